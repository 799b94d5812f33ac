package cli

import (
	"context"
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/dkravets/geoseek/internal/geo"
	"github.com/dkravets/geoseek/internal/models"
	"github.com/dkravets/geoseek/internal/schedule"
)

// circleCenter returns the visible circle center: the hider's position
// displaced by the fixed per-game offset. Unknown until the hider has set
// a location.
func circleCenter(g *models.Game) (models.Location, bool) {
	if g.HiderLocation == nil {
		return models.Location{}, false
	}
	return geo.ApplyOffset(*g.HiderLocation, g.CircleOffset), true
}

func (a *App) Status(ctx context.Context) error {
	v, ok := a.coord.CurrentView()
	if !ok {
		fmt.Println("Not in a game. Use 'create' or 'join'.")
		return nil
	}

	g := v.Game
	fmt.Printf("Game %s — %s, hider %s\n", g.GameCode, g.Status, g.HiderName)
	fmt.Printf("Circle radius: %.0f m\n", g.CurrentRadius)

	if g.Status == models.StatusActive && g.StartTime > 0 {
		elapsed := time.Now().UnixMilli() - g.StartTime
		fmt.Printf("Elapsed: %s, next shrink in %s\n",
			schedule.FormatElapsed(elapsed), schedule.FormatElapsed(v.TimeToNextShrinkMs))
	}

	if center, ok := circleCenter(g); ok {
		fmt.Printf("Circle center: %.5f, %.5f\n", center.Lat, center.Lng)
	} else {
		fmt.Println("Circle center: not set yet")
	}

	if len(v.Players) == 0 {
		fmt.Println("No seekers yet.")
		return nil
	}
	fmt.Println("Seekers:")
	for _, p := range v.Players {
		mark := " "
		if p.Found {
			mark = "✓"
		}
		if p.Location != nil {
			fmt.Printf("  [%s] %s at %.5f, %.5f\n", mark, p.DisplayName, p.Location.Lat, p.Location.Lng)
		} else {
			fmt.Printf("  [%s] %s (no position)\n", mark, p.DisplayName)
		}
	}
	return nil
}

// Venues lists pubs and bars inside the current circle.
func (a *App) Venues(ctx context.Context) error {
	v, ok := a.coord.CurrentView()
	if !ok {
		fmt.Println("Not in a game.")
		return nil
	}

	center, ok := circleCenter(v.Game)
	if !ok {
		fmt.Println("No circle yet: the hider has not set a location.")
		return nil
	}

	found := a.venues.FetchInRadius(ctx, center, v.Game.CurrentRadius)
	if len(found) == 0 {
		fmt.Println("No pubs or bars found inside the circle.")
		return nil
	}
	for _, venue := range found {
		fmt.Printf("  %s (%s) at %.5f, %.5f\n", venue.Name, venue.Category, venue.Location.Lat, venue.Location.Lng)
	}
	return nil
}

// QR writes the join code as a QR image so other players can scan it.
func (a *App) QR(ctx context.Context) error {
	v, ok := a.coord.CurrentView()
	if !ok {
		fmt.Println("Not in a game.")
		return nil
	}
	if !a.isHider() {
		fmt.Println("Only the hider shares the code.")
		return nil
	}

	if err := qrcode.WriteFile(v.Game.GameCode, qrcode.Medium, 256, a.config.QRCodeFile); err != nil {
		fmt.Println("Could not write QR code:", err)
		return err
	}
	fmt.Printf("QR code written to %s\n", a.config.QRCodeFile)
	return nil
}
