package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/freshcart/freshcart/internal/store"
)

var collections = []string{
	store.CollectionProducts,
	store.CollectionUsers,
	store.CollectionOrders,
}

func main() {
	dir := flag.String("dir", "data", "data directory to seed")
	keep := flag.Bool("keep", false, "only seed missing collections, keep existing data")
	flag.Parse()

	if !*keep {
		for _, name := range collections {
			path := filepath.Join(*dir, name+".json")
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				fmt.Printf("Failed to remove %s: %v\n", path, err)
				os.Exit(1)
			}
		}
	}

	st, err := store.Open(*dir)
	if err != nil {
		fmt.Printf("Failed to open store: %v\n", err)
		os.Exit(1)
	}
	if err := st.Seed(); err != nil {
		fmt.Printf("Failed to seed store: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded data directory %s\n", *dir)
}
