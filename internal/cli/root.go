package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if current := a.sessions.Current(); current != nil {
		return fmt.Sprintf("(%s)", current.Name)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to StreamHub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("shub %s> ", a.getStatus())
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
			if a.isSignedIn() {
				fmt.Println("Available commands: feed, dashboard, watch <id>, upload, delete <id>, profile, passwd, logout, delete-account, exit")
			} else {
				fmt.Println("Available commands: feed, watch <id>, register, login, exit")
			}

		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "feed":
			a.feed(ctx, args)
		case "dashboard":
			a.dashboard(ctx, args)
		case "watch":
			if len(args) == 0 {
				fmt.Println("Usage: watch <id>")
				continue
			}
			a.watch(ctx, args[0])
		case "upload":
			a.upload(ctx)
		case "delete":
			if len(args) == 0 {
				fmt.Println("Usage: delete <id>")
				continue
			}
			a.remove(ctx, args[0])
		case "profile":
			a.profile(ctx)
		case "passwd":
			a.changePassword(ctx)
		case "delete-account":
			a.deleteAccount(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
