package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mindcare/internal/bootstrap"
	"mindcare/internal/config"
	"mindcare/internal/llm"
	"mindcare/internal/rag"
	"mindcare/internal/service"
	"mindcare/internal/stress"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadToolConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	c := bootstrap.LoadCorpus(ctx, cfg.Server(), logger)
	entries := c.Entries()

	var llmClient llm.LLMClient
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	}

	history := service.NewMemoryHistoryStore(0)
	chatSvc := service.NewChatService(
		rag.NewEngine(entries),
		stress.NewEstimator(stress.BuildTiers(entries)),
		service.NewResponseComposer(llmClient, logger, nil),
		history,
		logger,
		cfg.MatchTopK,
	)
	monitor := service.NewStressMonitor(history)
	sessionID := uuid.NewString()

	fmt.Println("===== MindCare =====")
	fmt.Printf("Corpus: %d plantillas. LLM: %v\n", c.Len(), llmClient != nil)
	fmt.Println("Comandos: /stress, /reset, /exit")

	for {
		fmt.Print("\nyou> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)

		switch line {
		case "":
			continue
		case "/exit", "/quit":
			return
		case "/reset":
			if err := chatSvc.Reset(ctx, sessionID); err != nil {
				fmt.Printf("reset: %v\n", err)
			}
			fmt.Println("Historial borrado.")
			continue
		case "/stress":
			summary, err := monitor.Summary(ctx, sessionID)
			if err != nil {
				fmt.Printf("stress: %v\n", err)
				continue
			}
			fmt.Printf("actual=%d tendencia=%s promedio=%.1f pico=%d turnos=%d (%s)\n",
				summary.CurrentStress, summary.Trend, summary.AverageStress,
				summary.PeakStress, summary.TurnsCount, summary.RecentTrend)
			continue
		}

		res, err := chatSvc.Chat(ctx, sessionID, line)
		if err != nil {
			if errors.Is(err, service.ErrEmptyMessage) {
				continue
			}
			fmt.Printf("error: %v\n", err)
			continue
		}

		fmt.Printf("\nmindcare> %s\n", res.Response)
		fmt.Printf("[stress %d/10 %s, %s | source=%s", res.StressMeter.Current, res.StressMeter.Label, res.StressMeter.Trend, res.Source)
		if len(res.Matches) > 0 {
			fmt.Printf(" | top=%s (%d)", res.Matches[0].Topic, res.Matches[0].Similarity)
		}
		fmt.Println("]")
		if res.Insights.IsCrisis {
			fmt.Println("Si estás en peligro, llamá a tu número local de emergencias o a una línea de crisis.")
		}
	}
}
