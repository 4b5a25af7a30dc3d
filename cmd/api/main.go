package main

func main() {
	cfg := LoadConfiguration()

	app := NewApp(cfg)
	defer app.cleanup()

	app.startBackground()
	app.InitializeServer()
	app.StartServer()
}
