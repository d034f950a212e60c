// Command server runs the SharkAttack facts service: the HTTP API, the
// notification stream and the recovery consumer.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/facts-mng/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
