package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/inkpress/inkpress"
	"github.com/inkpress/inkpress/stats"
)

// loadBackend resolves the backend base URL from config.yaml, then
// INKPRESS_* environment variables, then the default.
func loadBackend() string {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("inkpress")
	v.AutomaticEnv()
	v.SetDefault("backend_url", "http://localhost:3001")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	return v.GetString("backend_url")
}

func newClient() *inkpress.Client {
	return inkpress.NewClient(loadBackend(), &http.Client{Timeout: 30 * time.Second})
}

func runList(args []string) error {
	ctx := context.Background()
	posts, err := newClient().List(ctx)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Println("No posts.")
		return nil
	}
	for _, p := range posts {
		fmt.Printf("%-8s  %-20s  %-12s  %s\n", p.ID, truncate(p.Title, 20), truncate(p.Author, 12), p.CreatedAt)
	}
	return nil
}

func runPublish(args []string) error {
	fs := flag.NewFlagSet("publish", flag.ExitOnError)
	title := fs.String("title", "", "post title (min 6 characters)")
	author := fs.String("author", "", "author name (optional)")
	description := fs.String("description", "", "post body (min 6 characters)")
	image := fs.String("image", "", "image URL, or path to a local file to compress and embed")
	id := fs.String("id", "", "existing post id to update instead of creating")
	if err := fs.Parse(args); err != nil {
		return err
	}

	draft := inkpress.Draft{
		Title:       *title,
		Author:      *author,
		Description: *description,
		Source:      inkpress.SourceURL,
		ImageURL:    *image,
	}

	if errs := inkpress.ValidateDraft(draft); !errs.Valid() {
		for field, code := range errs {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, code)
		}
		return fmt.Errorf("draft is not valid")
	}

	encoded, err := resolveImage(*image)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client := newClient()
	if *id == "" {
		created, err := client.Create(ctx, inkpress.NewRecord(draft, encoded, ""))
		if err != nil {
			return err
		}
		fmt.Printf("Published post %s\n", created.ID)
		return nil
	}
	existing, err := client.Get(ctx, *id)
	if err != nil {
		return err
	}
	updated, err := client.Update(ctx, *id, inkpress.UpdateRecord(existing, draft, encoded, ""))
	if err != nil {
		return err
	}
	fmt.Printf("Updated post %s\n", updated.ID)
	return nil
}

// resolveImage treats the flag value as a pass-through URL unless it names
// a readable local file, in which case the file goes through the upload
// compression path.
func resolveImage(value string) (string, error) {
	if value == "" || strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return inkpress.NormalizeImage(inkpress.SourceURL, value)
	}
	f, err := os.Open(value)
	if err != nil {
		return "", fmt.Errorf("open image %s: %w", value, err)
	}
	defer f.Close()
	return inkpress.NormalizeUpload(f, "")
}

func runDelete(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: inkpress delete <id>")
	}
	if err := newClient().Remove(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted post %s\n", args[0])
	return nil
}

func runStats(args []string) error {
	posts, err := newClient().List(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("%d posts\n", len(posts))
	for _, s := range stats.CountsByAuthor(posts) {
		fmt.Printf("  %-20s %d\n", s.Name, s.Count)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
