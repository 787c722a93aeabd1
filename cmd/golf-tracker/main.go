package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/nschoena/golf-tracker/internal/providers"
	"github.com/nschoena/golf-tracker/internal/services"
	"github.com/nschoena/golf-tracker/pkg/config"
	"github.com/nschoena/golf-tracker/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "golf-tracker",
		Usage: "track golf rounds and render scorecards",
		Commands: []*cli.Command{
			reportCommand(),
			courseCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func setup() (*config.Config, *logrus.Entry, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	entry := log.WithField("run_id", uuid.NewString())
	return cfg, entry, nil
}

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "render the scorecard for a recorded round",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "course",
				Usage:    "course JSON file (name under COURSES_DIR or a path)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "score",
				Usage:    "score JSON file (name under SCORES_DIR or a path)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "xlsx",
				Usage: "also export the scorecard to an Excel workbook",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, log, err := setup()
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			svc := services.NewScorecardService(cfg, log)
			sc, err := svc.BuildScoreCard(c.String("course"), c.String("score"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			if err := svc.WriteReport(os.Stdout, sc); err != nil {
				return cli.Exit(err.Error(), 1)
			}

			if out := c.String("xlsx"); out != "" {
				if err := svc.Export(out, sc); err != nil {
					return cli.Exit(err.Error(), 1)
				}
			}
			return nil
		},
	}
}

func courseCommand() *cli.Command {
	return &cli.Command{
		Name:  "course",
		Usage: "show a course summary",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "course JSON file (name under COURSES_DIR or a path)",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			cfg, _, err := setup()
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			path := c.String("file")
			if _, statErr := os.Stat(path); statErr != nil {
				path = cfg.CoursesDir + string(os.PathSeparator) + path
			}
			course, err := providers.LoadCourse(path)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			fmt.Println(course)
			for _, h := range course.Holes() {
				fmt.Printf("  hole %2d  par %d  %3d yds  hcp %2d\n",
					h.Number(), h.Par(), h.Yardage(), h.Handicap())
			}
			return nil
		},
	}
}
