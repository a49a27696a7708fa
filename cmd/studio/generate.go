package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"campaign-studio/internal/adapter/client"
	"campaign-studio/internal/adapter/llm"
	"campaign-studio/internal/adapter/usecase"
	"campaign-studio/internal/config"
	"campaign-studio/internal/core/domain"
	"campaign-studio/internal/studio"
)

var generateOpts struct {
	form           studio.FormInput
	regenerateTone string
	copySection    string
	server         string
	local          bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a campaign for a product",
	Long: `Generate a campaign for a product and print every section.

Examples:
  studio generate --product "Organic Cold Brew" --description "Smooth, low-acid coffee"
  studio generate --product "Cold Brew" --description "..." --platform Instagram --platform LinkedIn --tone Premium
  studio generate --product "Cold Brew" --description "..." --regenerate-tone Bold --copy captions`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	f := generateCmd.Flags()
	f.StringVar(&generateOpts.form.ProductName, "product", "", "Product name")
	f.StringVar(&generateOpts.form.Description, "description", "", "Short product description")
	f.StringVar(&generateOpts.form.Audience, "audience", "", "Target audience")
	f.StringArrayVar(&generateOpts.form.Platforms, "platform", nil,
		"Platform to write for, repeatable ("+strings.Join(studio.PlatformOptions, ", ")+")")
	f.StringVar(&generateOpts.form.Tone, "tone", "", "Tone ("+strings.Join(studio.ToneOptions, ", ")+")")
	f.StringVar(&generateOpts.regenerateTone, "regenerate-tone", "",
		"Regenerate once more with this tone ("+strings.Join(studio.RegenerateToneOptions, ", ")+")")
	f.StringVar(&generateOpts.copySection, "copy", "",
		"Copy a section to the clipboard ("+strings.Join(studio.SectionKeys(), ", ")+")")
	f.StringVar(&generateOpts.server, "server", client.DefaultBaseURL, "Campaign server base URL (env STUDIO_SERVER)")
	f.BoolVar(&generateOpts.local, "local", false, "Generate in process instead of calling a server")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server := generateOpts.server
	if !cmd.Flags().Changed("server") {
		server = envOr("STUDIO_SERVER", server)
	}
	gen, err := newGenerator(ctx, server)
	if err != nil {
		return fmt.Errorf("%s %w", errorStyle.Render("Error:"), err)
	}

	out := cmd.OutOrStdout()
	sess := studio.NewSession(gen)

	fmt.Fprintln(out, mutedStyle.Render("→ Generating campaign..."))
	res, err := sess.Submit(ctx, generateOpts.form)
	if err != nil {
		return fmt.Errorf("%s %w", errorStyle.Render("Error:"), err)
	}

	if generateOpts.regenerateTone != "" {
		sess.SetRegenerateTone(studio.NormalizeTone(generateOpts.regenerateTone,
			studio.RegenerateToneOptions, studio.DefaultRegenerateTone))
		fmt.Fprintln(out, mutedStyle.Render("→ Regenerating with a "+sess.RegenerateTone()+" tone..."))
		if res, err = sess.Regenerate(ctx); err != nil {
			fmt.Fprint(out, renderResult(sess.Result()))
			return fmt.Errorf("%s %w", errorStyle.Render("Error:"), err)
		}
	}

	fmt.Fprint(out, renderResult(res))

	if generateOpts.copySection != "" {
		return copySection(cmd, res, generateOpts.copySection)
	}
	return nil
}

func newGenerator(ctx context.Context, server string) (studio.Generator, error) {
	if !generateOpts.local {
		return client.New(server, nil), nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	gen, err := llm.New(ctx, cfg.LLM, cfg.Credentials)
	if err != nil {
		return nil, err
	}
	return usecase.NewCampaignUseCase(gen, zap.NewNop()), nil
}

func copySection(cmd *cobra.Command, res *domain.CampaignResult, key string) error {
	text, ok := studio.CopyText(res, key)
	if !ok {
		return fmt.Errorf("%s unknown section %q, want one of: %s",
			errorStyle.Render("Error:"), key, strings.Join(studio.SectionKeys(), ", "))
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%s copy failed: %w", errorStyle.Render("Error:"), err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✓ Copied "+key+" to the clipboard"))
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
