package main

import (
	"fmt"
	"os"

	"github.com/stillpoint-health/backend/backendservice"
)

func main() {
	if err := backendservice.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
