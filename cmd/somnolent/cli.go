package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/somnolent"
	somnolenthttp "github.com/fwojciec/somnolent/http"
	"github.com/fwojciec/somnolent/tweet"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Composer  *tweet.Composer
	Publisher somnolent.Publisher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Token     string        `env:"SOMNOLENT_TOKEN" help:"OAuth 2.0 user access token used to post"`
	DryRun    bool          `short:"n" help:"Print the tweet instead of posting it"`
	BaseURL   string        `default:"${base_url}" help:"Prefix of story URLs"`
	IndexURL  string        `default:"${index_url}" help:"Page linking to the newest story"`
	APIURL    string        `name:"api-url" default:"${api_url}" help:"Base URL of the X API"`
	MaxTries  int           `default:"5" help:"Stories to try before giving up"`
	MaxLength int           `default:"140" help:"Maximum tweet length in characters"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Timeout per HTTP request"`
	Rate      float64       `default:"1" help:"Maximum requests per second to the story site"`
	Verbose   bool          `short:"v" help:"Log every attempt"`
}

// vars supplies the defaults interpolated into CLI tags.
func vars() map[string]string {
	return map[string]string{
		"base_url":  somnolent.DefaultBaseURL,
		"index_url": somnolent.DefaultIndexURL,
		"api_url":   somnolenthttp.DefaultAPIURL,
	}
}

// Validate returns an error if the flags are inconsistent.
func (c *CLI) Validate() error {
	if !c.DryRun && c.Token == "" {
		return somnolent.Errorf(somnolent.EINVALID, "token required to post; set SOMNOLENT_TOKEN or use --dry-run")
	}
	if c.MaxTries < 1 {
		return somnolent.Errorf(somnolent.EINVALID, "max tries must be at least 1")
	}
	if c.MaxLength < 1 {
		return somnolent.Errorf(somnolent.EINVALID, "max length must be at least 1")
	}
	if c.Rate <= 0 {
		return somnolent.Errorf(somnolent.EINVALID, "rate must be positive")
	}
	return nil
}
