package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"mindmeld/config"
	"mindmeld/game"
	"mindmeld/llm"
	"mindmeld/logging"
	"mindmeld/prompts"
)

var (
	flagModel1      string
	flagModel2      string
	flagPrompt1     string
	flagPrompt2     string
	flagRounds      int
	flagTemperature float64
	flagSeed        int64
	flagTestPrompts bool
)

var rootCmd = &cobra.Command{
	Use:   "mindmeld <game>",
	Short: "Pit two language models against each other in bluffing games",
	Long: `mindmeld runs a local match between two language-model agents.

The only game so far is "coinflip": a coin-flip bluffing game where the
guesser may cheat with ESP and the flipper may call the bluff. Full prompt
and response transcripts land under the log directory.`,
	Args:          cobra.ExactArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagModel1, "model1", "", "model for player 1")
	f.StringVar(&flagModel2, "model2", "", "model for player 2")
	f.StringVar(&flagPrompt1, "prompt1", "", "system prompt file name for player 1")
	f.StringVar(&flagPrompt2, "prompt2", "", "system prompt file name for player 2")
	f.IntVar(&flagRounds, "rounds", 0, "number of rounds to play")
	f.Float64Var(&flagTemperature, "temperature", 0, "base sampling temperature")
	f.Int64Var(&flagSeed, "seed", 0, "coin flip seed (0 = random)")
	f.BoolVar(&flagTestPrompts, "test-prompts", false, "ask each model to explain the rules before playing")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	loadAPIKeysFromSecrets()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	gameName := strings.ToLower(args[0])
	if gameName != "coinflip" {
		return fmt.Errorf("unknown game: %s", args[0])
	}

	system1, err := prompts.Load(cfg.PromptDir, gameName, cfg.Player1.Prompt)
	if err != nil {
		return err
	}
	system2, err := prompts.Load(cfg.PromptDir, gameName, cfg.Player2.Prompt)
	if err != nil {
		return err
	}

	provider1, err := llm.ProviderFor(cfg.Player1.Model)
	if err != nil {
		return fmt.Errorf("player 1 model %s: %w", cfg.Player1.Model, err)
	}
	provider2, err := llm.ProviderFor(cfg.Player2.Model)
	if err != nil {
		return fmt.Errorf("player 2 model %s: %w", cfg.Player2.Model, err)
	}

	logs, err := logging.Setup(cfg.LogDir, gameName, []logging.AgentSpec{
		{Player: cfg.Player1.Name, Model: cfg.Player1.Model, Index: 1},
		{Player: cfg.Player2.Name, Model: cfg.Player2.Model, Index: 2},
	})
	if err != nil {
		return err
	}
	defer logs.Close()

	agent1 := llm.NewAgent(cfg.Player1.Name, cfg.Player1.Model, provider1, system1, cfg.Temperature, cfg.MaxTokens, logs.Agents[cfg.Player1.Name])
	agent2 := llm.NewAgent(cfg.Player2.Name, cfg.Player2.Model, provider2, system2, cfg.Temperature, cfg.MaxTokens, logs.Agents[cfg.Player2.Name])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if flagTestPrompts {
		if err := testPrompts(ctx, logs, agent1, agent2); err != nil {
			return err
		}
	}

	match := game.NewCoinFlip(cfg.Player1.Name, cfg.Player2.Name, agent1, agent2, cfg.Rounds, cfg.Seed, logs.Main)
	logs.Main.Infof("match %s: %s (%s) vs %s (%s), %d rounds",
		match.ID, cfg.Player1.Name, cfg.Player1.Model, cfg.Player2.Name, cfg.Player2.Model, cfg.Rounds)
	fmt.Printf("%s %s  %s %s  %s\n",
		bold("Match:"),
		fmt.Sprintf("%s(%s)", cyan(cfg.Player1.Name), dim(cfg.Player1.Model)),
		bold("vs"),
		fmt.Sprintf("%s(%s)", warn(cfg.Player2.Name), dim(cfg.Player2.Model)),
		dim(fmt.Sprintf("rounds=%d id=%s", cfg.Rounds, match.ID)))
	fmt.Println(dim("Ctrl+C ends the match after the current round."))

	matchErr := match.PlayMatch(ctx)
	switch {
	case matchErr == nil:
	case errors.Is(matchErr, context.Canceled):
		fmt.Println(warn("Match interrupted; reporting completed rounds."))
		logs.Main.Warn("match interrupted by signal")
	default:
		logs.Main.Errorf("match aborted: %v", matchErr)
		return fmt.Errorf("match aborted: %w", matchErr)
	}

	printReport(match, cfg)
	logs.Main.Infof("final: %s", match.State())
	fmt.Println(dim("Logs: " + logs.Dir))
	return nil
}

// applyFlags lets explicitly set flags win over file and env config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("model1") {
		cfg.Player1.Model = flagModel1
	}
	if f.Changed("model2") {
		cfg.Player2.Model = flagModel2
	}
	if f.Changed("prompt1") {
		cfg.Player1.Prompt = flagPrompt1
	}
	if f.Changed("prompt2") {
		cfg.Player2.Prompt = flagPrompt2
	}
	if f.Changed("rounds") {
		cfg.Rounds = flagRounds
	}
	if f.Changed("temperature") {
		cfg.Temperature = flagTemperature
	}
	if f.Changed("seed") {
		cfg.Seed = flagSeed
	}
}

func testPrompts(ctx context.Context, logs *logging.Run, agents ...*llm.Agent) error {
	for _, a := range agents {
		section(fmt.Sprintf("Rules check: %s (%s)", a.Name, a.Model))
		resp, err := a.ExplainRules(ctx)
		if err != nil {
			return fmt.Errorf("rules check for %s: %w", a.Name, err)
		}
		logs.Main.Infof("%s explains the rules:\n%s", a.Name, resp)
		fmt.Println(resp)
	}
	return nil
}

// loadAPIKeysFromSecrets fills missing provider keys from conventional secret
// files, so containers can mount keys instead of exporting them.
func loadAPIKeysFromSecrets() {
	loadKeyFromSecret("ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY_FILE",
		"./secrets/anthropic_api_key.txt", "/run/secrets/anthropic_api_key")
	loadKeyFromSecret("OPENAI_API_KEY", "OPENAI_API_KEY_FILE",
		"./secrets/openai_api_key.txt", "/run/secrets/openai_api_key")
}

func loadKeyFromSecret(envKey, fileEnvKey string, fallbacks ...string) {
	if os.Getenv(envKey) != "" {
		return
	}
	candidates := fallbacks
	if p := strings.TrimSpace(os.Getenv(fileEnvKey)); p != "" {
		candidates = append([]string{p}, fallbacks...)
	}
	for _, path := range candidates {
		if b, err := os.ReadFile(path); err == nil {
			if key := strings.TrimSpace(string(b)); key != "" {
				os.Setenv(envKey, key)
				return
			}
		}
	}
}
