package host

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/pixil98/go-libram/internal/game"
	"github.com/pixil98/go-libram/internal/property"
)

// DefaultSubjectPrefix is prepended to every bridge method subject.
const DefaultSubjectPrefix = "libram.host"

const (
	methodHave        = "have"
	methodCampground  = "campground"
	methodFamiliar    = "familiar"
	methodWeight      = "weight"
	methodAdjustment  = "adjustment"
	methodPath        = "path"
	methodSongs       = "songs"
	methodSongSlot    = "song_slot"
	methodExecute     = "execute"
	methodPropertyGet = "property.get"
	methodPropertySet = "property.set"
)

type wireCommand struct {
	Verb Verb     `json:"verb"`
	Args []string `json:"args"`
	Text string   `json:"text"`
}

type request struct {
	Id      string       `json:"id"`
	Entity  *game.Ref    `json:"entity,omitempty"`
	Command *wireCommand `json:"command,omitempty"`
	Key     string       `json:"key,omitempty"`
	Value   string       `json:"value,omitempty"`
}

type response struct {
	Id       string   `json:"id"`
	Bool     bool     `json:"bool,omitempty"`
	Int      int      `json:"int,omitempty"`
	String   string   `json:"string,omitempty"`
	List     []string `json:"list,omitempty"`
	Error    string   `json:"error,omitempty"`
	Rejected bool     `json:"rejected,omitempty"`
}

// Serve answers bridge requests on <prefix>.<method> using h and props.
// props may be nil, in which case property requests fail. The returned
// function removes the subscription.
func Serve(ctx context.Context, conn *nats.Conn, prefix string, h Host, props property.Store) (func(), error) {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}

	sub, err := conn.Subscribe(prefix+".>", func(msg *nats.Msg) {
		method := strings.TrimPrefix(msg.Subject, prefix+".")

		var req request
		var resp response
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			resp.Error = fmt.Sprintf("decoding request: %s", err)
		} else {
			resp = dispatch(ctx, method, req, h, props)
		}
		resp.Id = req.Id

		data, err := json.Marshal(resp)
		if err != nil {
			slog.ErrorContext(ctx, "encoding bridge response", "method", method, "error", err)
			return
		}
		if err := msg.Respond(data); err != nil {
			slog.WarnContext(ctx, "responding to bridge request", "method", method, "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", prefix, err)
	}

	return func() {
		if err := sub.Unsubscribe(); err != nil {
			slog.WarnContext(ctx, "unsubscribing bridge", "error", err)
		}
	}, nil
}

func dispatch(ctx context.Context, method string, req request, h Host, props property.Store) response {
	var resp response
	var err error

	switch method {
	case methodHave, methodCampground, methodWeight:
		if req.Entity == nil {
			err = fmt.Errorf("%s: entity is required", method)
			break
		}
		var e game.Entity
		e, err = req.Entity.Entity()
		if err != nil {
			break
		}
		switch method {
		case methodHave:
			resp.Bool, err = h.Have(ctx, e)
		case methodCampground:
			resp.Bool, err = h.HaveInCampground(ctx, game.Item(e.Name()))
		case methodWeight:
			resp.Int, err = h.FamiliarWeight(ctx, game.Familiar(e.Name()))
		}
	case methodFamiliar:
		var f game.Familiar
		f, err = h.CurrentFamiliar(ctx)
		resp.String = f.Name()
	case methodAdjustment:
		resp.Int, err = h.WeightAdjustment(ctx)
	case methodPath:
		var p game.Path
		p, err = h.MyPath(ctx)
		resp.String = p.Name()
	case methodSongs:
		var songs []game.Effect
		songs, err = h.ActiveSongs(ctx)
		for _, s := range songs {
			resp.List = append(resp.List, s.Name())
		}
	case methodSongSlot:
		resp.Bool, err = h.CanRememberSong(ctx)
	case methodExecute:
		if req.Command == nil {
			err = fmt.Errorf("execute: command is required")
			break
		}
		var cmd Command
		cmd, err = ParseCommand(req.Command.Verb, req.Command.Args)
		if err != nil {
			break
		}
		err = h.Execute(ctx, cmd)
		resp.Rejected = errors.Is(err, ErrCommandFailed)
	case methodPropertyGet:
		if props == nil {
			err = fmt.Errorf("no property store")
			break
		}
		resp.String, err = props.Get(ctx, req.Key)
	case methodPropertySet:
		if props == nil {
			err = fmt.Errorf("no property store")
			break
		}
		err = props.Set(ctx, req.Key, req.Value)
	default:
		err = fmt.Errorf("unknown method %q", method)
	}

	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
