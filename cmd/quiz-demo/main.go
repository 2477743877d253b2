package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"ibadah/internal/ai"
)

func main() {
	category := flag.String("category", "Quran", "question topic")
	count := flag.Int("n", 3, "number of questions")
	flag.Parse()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	questions, err := provider.GenerateQuestions(ctx, *category, *count)
	if err != nil {
		log.Fatalf("Error generating questions: %v", err)
	}

	for i, q := range questions {
		fmt.Printf("%d. [%s] %s\n", i+1, q.Category, q.Question)
		for _, o := range q.Options {
			mark := " "
			if o == q.Answer {
				mark = "*"
			}
			fmt.Printf("   %s %s\n", mark, o)
		}
	}
}
