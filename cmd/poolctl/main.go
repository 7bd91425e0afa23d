// poolctl is the operations CLI for the AquaOps backend: it provisions the
// DynamoDB tables and can load a small demo data set, both aimed at local
// development against DynamoDB Local.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"
)

var rootCmd = &cobra.Command{
	Use:   "poolctl",
	Short: "AquaOps backend administration",
	Long:  `poolctl provisions the DynamoDB tables the AquaOps API uses and can seed a demo data set for local development.`,
}

func main() {
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
