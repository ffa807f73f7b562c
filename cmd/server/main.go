package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/chesskit-go/chesskit/internal/game"
	. "github.com/chesskit-go/chesskit/internal/helpers"
)

// UpdateToWeb mirrors the state a board UI needs after every change:
// the position, what just happened, and what the selected piece can do.
type UpdateToWeb struct {
	GameId        string   `json:"gameId"`
	FenString     string   `json:"fenString"`
	LastMove      string   `json:"lastMove"`
	Selection     string   `json:"selection"`
	PossibleMoves []string `json:"possibleMoves"`
	Player        string   `json:"player"`
	Status        string   `json:"status"`
}

func (u UpdateToWeb) String() string {
	return fmt.Sprint("UpdateToWeb: ", u.FenString, ", ", u.LastMove, ", ", u.Selection, ", ", u.PossibleMoves, ", ", u.Status)
}

type MessageFromWeb struct {
	NewFen    *string `json:"newFen"`
	Selection *string `json:"selection"`
	Move      *string `json:"move"`
	Rewind    *int    `json:"rewind"`
}

func (u MessageFromWeb) String() string {
	if u.NewFen != nil {
		return fmt.Sprint("MessageFromWeb NewFen: ", *u.NewFen)
	}
	if u.Selection != nil {
		return fmt.Sprint("MessageFromWeb Selection: ", *u.Selection)
	}
	if u.Move != nil {
		return fmt.Sprint("MessageFromWeb Move: ", *u.Move)
	}
	if u.Rewind != nil {
		return fmt.Sprint("MessageFromWeb Rewind: ", *u.Rewind)
	}
	return "MessageFromWeb unknown"
}

type LogForwarding struct {
	writeCallback func(message string)
}

func (l *LogForwarding) Println(v ...any) {
	l.writeCallback(fmt.Sprintln(v...))
}
func (l *LogForwarding) Printf(format string, v ...any) {
	l.writeCallback(fmt.Sprintf(format, v...))
}
func (l *LogForwarding) Print(v ...any) {
	l.writeCallback(fmt.Sprint(v...))
}

func serveGame(c *websocket.Conn) {
	gameId := uuid.NewString()
	g := game.NewGame()

	var logToClient = func(message string) {
		DefaultLogger.Printf("%v: %v", gameId, message)
		bytes, err := json.Marshal([]string{message})
		if !IsNil(err) {
			DefaultLogger.Println("logging: json marshal:", err)
			return
		}
		if err := c.WriteMessage(websocket.TextMessage, bytes); !IsNil(err) {
			DefaultLogger.Println("logging: websocket:", err)
		}
	}

	logger := &LogForwarding{
		writeCallback: func(message string) {
			logToClient(fmt.Sprint("server: ", message))
		},
	}
	g.Logger = &LogForwarding{
		writeCallback: func(message string) {
			logToClient(fmt.Sprint("game: ", message))
		},
	}

	var sendUpdate = func(update UpdateToWeb) {
		update.GameId = gameId
		update.FenString = g.Fen()
		update.Player = g.Player().String()
		update.Status = g.Status().String()
		if lastMove := g.LastMove(); lastMove.HasValue() {
			update.LastMove = lastMove.Value().String()
		}

		bytes, err := json.Marshal(update)
		if !IsNil(err) {
			logger.Println("update: json marshal:", err)
			return
		}
		if err := c.WriteMessage(websocket.TextMessage, bytes); !IsNil(err) {
			logger.Println("websocket:", err)
		}
	}

	var handleMessage = func(bytes []byte) {
		var message MessageFromWeb
		if err := json.Unmarshal(bytes, &message); !IsNil(err) {
			logger.Println("json unmarshal:", err)
			return
		}

		var update UpdateToWeb

		if message.NewFen != nil {
			newGame, err := game.GameFromFen(*message.NewFen)
			if !IsNil(err) {
				logger.Println("setup:", err)
				return
			}
			newGame.Logger = g.Logger
			g = newGame
		} else if message.Selection != nil {
			if *message.Selection != "" {
				update.Selection = *message.Selection
				moves, err := g.MovesForSelection(*message.Selection)
				if !IsNil(err) {
					logger.Println("moves for", *message.Selection, ":", err)
					return
				}
				update.PossibleMoves = moves
			}
		} else if message.Move != nil {
			if err := g.PerformMoveFromString(*message.Move); !IsNil(err) {
				logger.Println("perform", *message.Move, ":", err)
				return
			}
		} else if message.Rewind != nil {
			if err := g.Rewind(*message.Rewind); !IsNil(err) {
				logger.Println("rewind", *message.Rewind, ":", err)
				return
			}
		}

		sendUpdate(update)
	}

	for {
		_, message, err := c.ReadMessage()
		if !IsNil(err) {
			DefaultLogger.Printf("%v: closing: %v", gameId, err)
			break
		}
		handleMessage(message)
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
		}
	}()

	port := 8002
	if len(os.Args) > 1 {
		fmt.Sscanf(os.Args[1], "%d", &port)
	}

	var upgrader = websocket.Upgrader{}

	router := mux.NewRouter()
	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if !IsNil(err) {
			DefaultLogger.Println("upgrade:", err)
			return
		}
		defer c.Close()
		serveGame(c)
	})

	DefaultLogger.Printf("serving at :%v", port)
	err := http.ListenAndServe(fmt.Sprintf(":%v", port), router)
	if err != nil {
		DefaultLogger.Println("serve:", err)
	}
}
