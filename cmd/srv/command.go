package main

import "github.com/urfave/cli/v2"

const flagConfig = "config"

func (s *srv) loadApp() {
	s.app = cli.NewApp()
	s.app.Action = cli.ShowAppHelp
	s.app.Name = "chime-integration"
	s.app.Usage = "Proxy for Amazon Chime meetings and messaging"
	s.app.Commands = []*cli.Command{
		{
			Action: s.startApi,
			Name:   "api",
			Usage:  "Start service api",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    flagConfig,
					Aliases: []string{"c"},
					Usage:   "Path to the TOML config file",
					Value:   "config.toml",
					EnvVars: []string{"CONFIG_FILE"},
				},
			},
			Category:    "Api",
			Description: `Used to start the meeting and messaging session apis, plus the metrics listener.`,
		},
	}
}
