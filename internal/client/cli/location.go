package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/models"
)

// Loc records the caller's position: the hider's hiding spot before the
// game starts, or a seeker's live position.
func (a *App) Loc(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Println("Usage: loc <lat> <lng>")
		return nil
	}

	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Println("Latitude is not a number.")
		return nil
	}
	lng, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Println("Longitude is not a number.")
		return nil
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		fmt.Println("Coordinates out of range.")
		return nil
	}

	loc := models.Location{Lat: lat, Lng: lng}

	if a.isHider() {
		err = a.coord.UpdateHiderLocation(ctx, loc)
	} else {
		err = a.coord.UpdatePlayerLocation(ctx, loc)
	}
	if err != nil {
		fmt.Println(common.UserMessage(err))
		return err
	}

	fmt.Println("Location updated.")
	return nil
}

// Found marks the caller as having found the hider.
func (a *App) Found(ctx context.Context) error {
	if a.isHider() {
		fmt.Println("You are the one hiding.")
		return nil
	}
	if err := a.coord.MarkFound(ctx); err != nil {
		fmt.Println(common.UserMessage(err))
		return err
	}
	fmt.Println("Nice find!")
	return nil
}
