package configuration

type Configuration struct {
	HttpAddr   string `usage:"HTTP address"`
	Console    bool   `usage:"run the interactive console (disable to serve the HTTP API)"`
	Version    bool   `usage:"show version and exit"`
	ShowBanner bool   `usage:"show big banner"`
	ShowConfig bool   `usage:"print config"`
}

func Default() *Configuration {
	return &Configuration{
		HttpAddr:   "127.0.0.1:8080",
		Console:    true,
		ShowBanner: true,
	}
}
