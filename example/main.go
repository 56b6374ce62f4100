package main

import (
	"fmt"
	"os"

	"github.com/jpalmerr/pullbadge"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	// one-shot: repository, package and options straight to artifacts
	art, err := pullbadge.BuildBadgeURLs("acme", "widget", "widget", pullbadge.BadgeOptions{
		Label: "pulls",
		Logo:  "docker",
		Style: "flat-square",
	})
	if err != nil {
		logger.WithError(err).Error("failed to build badge")
		os.Exit(1)
	}

	fmt.Println("Badge URL:      ", art.JSONURL)
	fmt.Println("Markdown:       ", art.JSONMarkdown)
	fmt.Println("Direct shield:  ", art.DirectMarkdown)
	fmt.Println()

	// the same result, walked through the form one step at a time
	builder, err := pullbadge.New(
		pullbadge.WithShieldBase("https://ghcr-badge.elias.eu.org/shield"),
		pullbadge.WithLogger(logrus.NewEntry(logger)),
	)
	if err != nil {
		logger.WithError(err).Error("failed to create builder")
		os.Exit(1)
	}

	s := pullbadge.NewSession(builder)
	fmt.Printf("[%s] %s\n", s.Stage(), s.Hint().Message)

	s, _ = s.EnterRepository("https://github.com/acme/widget.git")
	fmt.Printf("[%s] %s\n", s.Stage(), s.Hint().Message)

	s, err = s.LoadPackages()
	if err != nil {
		logger.WithError(err).Error("failed to load packages")
		os.Exit(1)
	}
	fmt.Printf("[%s] %s\n", s.Stage(), s.Hint().Message)

	s = s.SetPackageName("widget-cli").SetColor("blue")
	for _, f := range pullbadge.Fields() {
		fmt.Printf("  %-24s %s\n", f.Title()+":", s.Artifacts().Get(f))
	}

	html, err := pullbadge.RenderPreview(s.Artifacts().JSONMarkdown)
	if err != nil {
		logger.WithError(err).Error("failed to render preview")
		os.Exit(1)
	}
	fmt.Println()
	fmt.Print("Preview: ", html)
}
