// Command turnstile is an interactive demo of the fsm package. It drives
// a coin-operated turnstile from a menu and prints every state change
// through a wildcard callback.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"

	"github.com/amp-labs/fsm/turnstile"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	gate, err := turnstile.New()
	if err != nil {
		return err
	}

	gate.AddCallbackForAnything(func(_ context.Context, from, to turnstile.State) error {
		fmt.Printf("\nTurnstile state has changed\n  Was: %v\n  Now: %v\n", from, to)

		return nil
	})

	for {
		sel := &promptui.Select{
			Label: fmt.Sprintf("Turnstile is %v", gate.CurrentState()),
			Items: []string{"Push", "Insert coin", "Quit"},
		}

		idx, _, err := sel.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				return nil
			}

			return err
		}

		switch idx {
		case 0:
			opened, err := gate.Push(ctx)
			if err != nil {
				return err
			}

			if opened {
				fmt.Println("\nThe turnstile opened")
			} else {
				fmt.Println("\nThe turnstile did not open")
			}

		case 1:
			if err := gate.InsertCoin(ctx); err != nil {
				return err
			}

		case 2:
			return nil
		}
	}
}
