// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the image-copier CLI.
//
// image-copier rewrites image references in Jekyll posts between markdown
// ![alt](path) and the theme's embedded <img> form, moving each image to the
// directory that matches the new form.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/image-copier/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command. It takes the direction flag as its only
// positional argument.
var rootCmd = &cobra.Command{
	Use:   "image-copier <reverse>",
	Short: "Convert post image references between markdown and embedded HTML",
	Long: `image-copier rewrites image references in every post under the posts
directory and moves the referenced images to match.

With "false" (or any value other than "True"/"true") it converts
![alt](path) lines into the theme's <span class="image blog"><img ...></span>
form and moves each image from <posts>/assets to the asset directory.

With "True" or "true" it converts the embedded form back to
![alt](./assets/name) and moves the images back into <posts>/assets.

Images are only moved when the destination directory exists. A skipped
move is reported as a warning; the reference is rewritten regardless.`,
	Example: `  image-copier false
  image-copier true --dry-run
  image-copier false --report out/run.yaml`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(viper.GetString("log_level"))
	},
	RunE: runRewrite,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./image-copier.yaml or ~/.config/image-copier/config.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, or error")

	f := rootCmd.Flags()
	f.String("posts-dir", types.DefaultPostsDir, "directory containing the posts to rewrite")
	f.String("post-assets-dir", "", "image directory for markdown references (default <posts-dir>/assets)")
	f.String("asset-dir", types.DefaultAssetDir, "image directory for embedded references")
	f.Bool("dry-run", false, "report what would change without writing posts or moving images")
	f.String("report", "", "write a YAML run report to this file")

	bind := map[string]string{
		"log_level":       "log-level",
		"posts_dir":       "posts-dir",
		"post_assets_dir": "post-assets-dir",
		"asset_dir":       "asset-dir",
		"dry_run":         "dry-run",
		"report":          "report",
	}
	for key, name := range bind {
		flag := pf.Lookup(name)
		if flag == nil {
			flag = f.Lookup(name)
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			panic(err)
		}
	}
}

// envOnlyKeys are layout settings read from the config file or
// IMAGE_COPIER_* variables but not exposed as flags.
var envOnlyKeys = []string{
	"post_link_prefix",
	"document_match",
	"container_class",
	"url_filter",
	"reverse_trigger",
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("image-copier")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "image-copier"))
		}
	}

	viper.SetEnvPrefix("IMAGE_COPIER")
	viper.AutomaticEnv()

	// Layout keys without a flag are unknown to viper until bound, and
	// Unmarshal only consults the environment for known keys.
	for _, key := range envOnlyKeys {
		if err := viper.BindEnv(key); err != nil {
			panic(err)
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
