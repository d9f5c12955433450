package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/luyandaaaa/Farm2city/internal/config"
	"github.com/luyandaaaa/Farm2city/internal/store"
	"github.com/luyandaaaa/Farm2city/internal/ussd"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	seedCfg := config.Default()
	if path := getEnv("CONFIG_PATH", ""); path != "" {
		var err error
		seedCfg, err = config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	orderStore := store.NewMemoryStore()
	defer orderStore.Close()

	session := ussd.NewSession(seedCfg.Seed(), ussd.WithOrderSink(orderStore))
	defer session.Close()

	fmt.Println("Farm2City USSD simulator. Type an option and press enter; type q to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("--", session.Header(), "--")
		fmt.Print(session.Screen())
		fmt.Print("> ")

		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "q" {
			break
		}
		session.Submit(line)
		if n, ok := session.Notification(); ok {
			fmt.Printf("\n[%s] %s\n", n.Kind, n.Message)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("input error: %v", err)
	}
}
