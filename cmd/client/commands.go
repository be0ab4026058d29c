// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/vitorpontobarbosa/GameLibrary/internal/adapter"
	"github.com/vitorpontobarbosa/GameLibrary/internal/app"
	"github.com/vitorpontobarbosa/GameLibrary/internal/utils"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

var (
	errUsage     = errors.New("usage")
	errInvalidID = errors.New("game id must be a positive integer")
)

const usage = `usage: client [-addr URL] [-token TOKEN] [-v] <command> [args]

commands:
  register EMAIL PASSWORD   create an account and print the token
  login EMAIL PASSWORD      log in and print the token
  list                      list every game
  mine                      list games you own
  get ID                    show one game
  create -name N -cover URL -description D [-studio S] [-price P] [-steam URL]
  update ID [-name N] [-cover URL] [-description D] [-studio S] [-price P] [-steam URL]
  delete ID                 delete a game you own
  version                   print client and server versions`

// runCommand executes one client command and writes its result to out.
func runCommand(ctx context.Context, client adapter.GameLibraryClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	command, args := args[0], args[1:]

	switch command {
	case "register", "login":
		if len(args) != 2 {
			return fmt.Errorf("%w: %s EMAIL PASSWORD", errUsage, command)
		}

		authenticate := client.Login
		if command == "register" {
			authenticate = client.Register
		}

		resp, err := authenticate(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, resp.Message)
		if userID, err := utils.ParseUserIDFromJWT(resp.Token); err == nil {
			fmt.Fprintf(out, "user id: %d\n", userID)
		}
		fmt.Fprintln(out, resp.Token)
		return nil

	case "list":
		games, err := client.ListGames(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, games)

	case "mine":
		games, err := client.ListMyGames(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, games)

	case "get":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		game, err := client.GetGame(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(out, game)

	case "create":
		request, err := parseCreate(args)
		if err != nil {
			return err
		}
		game, err := client.CreateGame(ctx, request)
		if err != nil {
			return err
		}
		return printJSON(out, game)

	case "update":
		id, err := parseID(args[:min(len(args), 1)])
		if err != nil {
			return err
		}
		update, err := parseUpdate(args[1:])
		if err != nil {
			return err
		}
		if err = client.UpdateGame(ctx, id, update); err != nil {
			return err
		}
		fmt.Fprintln(out, app.MsgGameUpdated)
		return nil

	case "delete":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		if err = client.DeleteGame(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(out, app.MsgGameDeleted)
		return nil

	case "version":
		serverVersion, err := client.ServerVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Client version: %s\n", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		fmt.Fprintf(out, "Server version: %s\n", serverVersion)
		return nil

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected a single game ID", errUsage)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, args[0])
	}
	return id, nil
}

// gameFlags holds the optional game fields shared by create and update.
// Unset flags stay nil.
type gameFlags struct {
	name, cover, description, studio, steam *string
	price                                   *float64
}

func parseGameFlags(command string, args []string) (gameFlags, error) {
	var f gameFlags

	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Func("name", "game title", setString(&f.name))
	fs.Func("cover", "cover image URL", setString(&f.cover))
	fs.Func("description", "game description", setString(&f.description))
	fs.Func("studio", "developer or publisher", setString(&f.studio))
	fs.Func("steam", "Steam store URL", setString(&f.steam))
	fs.Func("price", "price between 0 and 1000", func(s string) error {
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		f.price = &p
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return gameFlags{}, fmt.Errorf("%w: %s: %w", errUsage, command, err)
	}
	if fs.NArg() > 0 {
		return gameFlags{}, fmt.Errorf("%w: %s: unexpected arguments %v", errUsage, command, fs.Args())
	}

	return f, nil
}

func setString(dst **string) func(string) error {
	return func(s string) error {
		*dst = &s
		return nil
	}
}

func parseCreate(args []string) (models.CreateGameRequest, error) {
	f, err := parseGameFlags("create", args)
	if err != nil {
		return models.CreateGameRequest{}, err
	}

	return models.CreateGameRequest{
		Name:          deref(f.name),
		Studio:        f.studio,
		CoverImageURL: deref(f.cover),
		Price:         f.price,
		Description:   deref(f.description),
		SteamLink:     f.steam,
	}, nil
}

func parseUpdate(args []string) (models.GameUpdate, error) {
	f, err := parseGameFlags("update", args)
	if err != nil {
		return models.GameUpdate{}, err
	}

	return models.GameUpdate{
		Name:          f.name,
		Studio:        f.studio,
		CoverImageURL: f.cover,
		Price:         f.price,
		Description:   f.description,
		SteamLink:     f.steam,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
