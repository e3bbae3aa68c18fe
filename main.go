package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/sortlab/sortlab/bootstrap"
	"github.com/sortlab/sortlab/configuration"
	"github.com/sortlab/sortlab/console"
	"github.com/sortlab/sortlab/session"
)

var banner = `
                    _   _       _
                   | | | |     | |
  ___  ___  _ __ __| |_| | __ _| |__
 / __|/ _ \| '__/ _' | | |/ _' | '_ \
 \__ \ (_) | | | (_| | | | (_| | |_) |
 |___/\___/|_|  \__,_|_|_|\__,_|_.__/
                           version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	s := session.New()

	if c.Console {
		console.New(s, os.Stdin, os.Stdout).Run()
		return
	}

	start, _ := bootstrap.Bootstrap(c, s)
	start()
}
