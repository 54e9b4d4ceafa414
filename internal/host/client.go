package host

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/pixil98/go-libram/internal/game"
	"github.com/pixil98/go-libram/internal/property"
)

const DefaultRequestTimeout = 5 * time.Second

// NatsClient talks to a game client that runs Serve on the other end of a
// NATS connection. It is both a Host and a property.Store.
type NatsClient struct {
	conn    *nats.Conn
	prefix  string
	timeout time.Duration
}

var (
	_ Host           = (*NatsClient)(nil)
	_ property.Store = (*NatsClient)(nil)
)

type NatsClientOpt func(*NatsClient)

func WithSubjectPrefix(prefix string) NatsClientOpt {
	return func(c *NatsClient) {
		c.prefix = prefix
	}
}

// WithRequestTimeout bounds requests whose context has no deadline.
func WithRequestTimeout(d time.Duration) NatsClientOpt {
	return func(c *NatsClient) {
		c.timeout = d
	}
}

func NewNatsClient(conn *nats.Conn, opts ...NatsClientOpt) *NatsClient {
	c := &NatsClient{
		conn:    conn,
		prefix:  DefaultSubjectPrefix,
		timeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *NatsClient) request(ctx context.Context, method string, req request) (response, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req.Id = uuid.NewString()
	data, err := json.Marshal(req)
	if err != nil {
		return response{}, fmt.Errorf("encoding %s request: %w", method, err)
	}

	msg, err := c.conn.RequestWithContext(ctx, c.prefix+"."+method, data)
	if err != nil {
		return response{}, fmt.Errorf("%s request: %w", method, err)
	}

	var resp response
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		return response{}, fmt.Errorf("decoding %s response: %w", method, err)
	}
	if resp.Id != req.Id {
		return response{}, fmt.Errorf("%s response id %q does not match request %q", method, resp.Id, req.Id)
	}
	if resp.Rejected {
		return resp, fmt.Errorf("%w: %s", ErrCommandFailed, strings.TrimPrefix(resp.Error, ErrCommandFailed.Error()+": "))
	}
	if resp.Error != "" {
		return resp, fmt.Errorf("%s: %w", method, errors.New(resp.Error))
	}
	return resp, nil
}

func (c *NatsClient) entityRequest(ctx context.Context, method string, e game.Entity) (response, error) {
	ref := game.RefOf(e)
	return c.request(ctx, method, request{Entity: &ref})
}

func (c *NatsClient) Have(ctx context.Context, e game.Entity) (bool, error) {
	resp, err := c.entityRequest(ctx, methodHave, e)
	return resp.Bool, err
}

func (c *NatsClient) HaveInCampground(ctx context.Context, item game.Item) (bool, error) {
	resp, err := c.entityRequest(ctx, methodCampground, item)
	return resp.Bool, err
}

func (c *NatsClient) CurrentFamiliar(ctx context.Context) (game.Familiar, error) {
	resp, err := c.request(ctx, methodFamiliar, request{})
	return game.Familiar(resp.String), err
}

func (c *NatsClient) FamiliarWeight(ctx context.Context, f game.Familiar) (int, error) {
	resp, err := c.entityRequest(ctx, methodWeight, f)
	return resp.Int, err
}

func (c *NatsClient) WeightAdjustment(ctx context.Context) (int, error) {
	resp, err := c.request(ctx, methodAdjustment, request{})
	return resp.Int, err
}

func (c *NatsClient) MyPath(ctx context.Context) (game.Path, error) {
	resp, err := c.request(ctx, methodPath, request{})
	return game.Path(resp.String), err
}

func (c *NatsClient) ActiveSongs(ctx context.Context) ([]game.Effect, error) {
	resp, err := c.request(ctx, methodSongs, request{})
	if err != nil {
		return nil, err
	}
	songs := make([]game.Effect, 0, len(resp.List))
	for _, s := range resp.List {
		songs = append(songs, game.Effect(s))
	}
	return songs, nil
}

func (c *NatsClient) CanRememberSong(ctx context.Context) (bool, error) {
	resp, err := c.request(ctx, methodSongSlot, request{})
	return resp.Bool, err
}

func (c *NatsClient) Execute(ctx context.Context, cmd Command) error {
	_, err := c.request(ctx, methodExecute, request{Command: &wireCommand{
		Verb: cmd.Verb(),
		Args: cmd.Args(),
		Text: cmd.String(),
	}})
	return err
}

func (c *NatsClient) Get(ctx context.Context, name string) (string, error) {
	resp, err := c.request(ctx, methodPropertyGet, request{Key: name})
	return resp.String, err
}

func (c *NatsClient) Set(ctx context.Context, name, value string) error {
	_, err := c.request(ctx, methodPropertySet, request{Key: name, Value: value})
	return err
}
