package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	v, ok := a.coord.CurrentView()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s %s %.0fm)", v.Game.GameCode, v.Game.Status, v.Game.CurrentRadius)
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to geoseek (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("geoseek %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.inSession() {
				fmt.Println("Available commands: status, loc <lat> <lng>, found, venues, qr, start, leave, exit")
			} else {
				fmt.Println("Available commands: create, join, exit")
			}

		case "create":
			_ = a.Create(ctx)
		case "join":
			_ = a.Join(ctx)
		case "start":
			_ = a.Start(ctx)
		case "loc":
			_ = a.Loc(ctx, args)
		case "found":
			_ = a.Found(ctx)
		case "status", "s":
			_ = a.Status(ctx)
		case "venues":
			_ = a.Venues(ctx)
		case "qr":
			_ = a.QR(ctx)
		case "leave":
			_ = a.Leave(ctx)
		case "exit", "quit":
			if a.inSession() {
				a.coord.LeaveSession()
			}
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
