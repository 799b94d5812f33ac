package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/models"
)

func (a *App) Create(ctx context.Context) error {
	if a.inSession() {
		fmt.Println("Already in a game. Leave it first.")
		return nil
	}

	var override models.ConfigOverride

	radius, err := GetOptionalFloat(a.reader, "Initial radius in meters (empty for 500)", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	override.InitialRadiusMeters = radius

	intervalMin, err := GetOptionalFloat(a.reader, "Shrink interval in minutes (empty for 5)", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	if intervalMin != nil {
		ms := int64(*intervalMin * 60 * 1000)
		override.ShrinkIntervalMs = &ms
	}

	shrink, err := GetOptionalFloat(a.reader, "Shrink step in meters (empty for 50)", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	override.ShrinkMeters = shrink

	if _, err := a.coord.CreateSession(ctx, override); err != nil {
		fmt.Println(common.UserMessage(err))
		return err
	}

	if v, ok := a.coord.CurrentView(); ok {
		fmt.Printf("Game created. Share the join code: %s\n", v.Game.GameCode)
		fmt.Println("Set your hiding spot with 'loc <lat> <lng>', then 'start'.")
	}
	return nil
}

func (a *App) Join(ctx context.Context) error {
	if a.inSession() {
		fmt.Println("Already in a game. Leave it first.")
		return nil
	}

	code, err := GetSecret("Enter join code", os.Stdout)
	if err != nil {
		return err
	}
	if code == "" {
		fmt.Println("A join code is required.")
		return nil
	}

	if _, err := a.coord.JoinSession(ctx, code); err != nil {
		fmt.Println(common.UserMessage(err))
		return err
	}

	if v, ok := a.coord.CurrentView(); ok {
		fmt.Printf("Joined %s's game. Report your position with 'loc <lat> <lng>'.\n", v.Game.HiderName)
	}
	return nil
}

func (a *App) Start(ctx context.Context) error {
	if err := a.coord.StartSession(ctx); err != nil {
		fmt.Println(common.UserMessage(err))
		return err
	}
	fmt.Println("Game started. The circle is live.")
	return nil
}

func (a *App) Leave(ctx context.Context) error {
	if !a.inSession() {
		fmt.Println("Not in a game.")
		return nil
	}
	a.coord.LeaveSession()
	fmt.Println("Left the game.")
	return nil
}
