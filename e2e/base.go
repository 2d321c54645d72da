package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type Frame struct {
	Op    string          `json:"op"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

type BaseForumSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseForumSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ForumAddr == "" {
		s.T().Skip("FORUM_ADDR is not set, no node to test against")
	}
	s.client = &http.Client{Timeout: 10 * time.Second}
}

// Step prints a colorized header for a scenario step in logs
func (s *BaseForumSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Call sends a JSON request and decodes the JSON answer into out.
func (s *BaseForumSuite) Call(method, path, token string, body any, out any) int {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		payload = bytes.NewReader(data)
	}
	request, err := http.NewRequest(method, "http://"+s.Config.ForumAddr+path, payload)
	s.Require().NoError(err)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	response, err := s.client.Do(request)
	s.Require().NoError(err)
	defer response.Body.Close()
	data, err := io.ReadAll(response.Body)
	s.Require().NoError(err)

	s.T().Logf("HTTP %s %s [%d] in %v", method, path, response.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		s.T().Logf("RESPONSE: %s", data)
	}
	if out != nil {
		s.Require().NoError(json.Unmarshal(data, out))
	}
	return response.StatusCode
}

// Token asks a demo node for the token of a seeded person.
func (s *BaseForumSuite) Token(personID int) string {
	var out struct {
		JWT string `json:"jwt"`
	}
	status := s.Call(http.MethodPost, fmt.Sprintf("/api/v3/demo/token/%d", personID), "", nil, &out)
	s.Require().Equal(http.StatusOK, status, "is the node running with SEED_DEMO=true ?")
	return out.JWT
}

// WithConnection opens a live connection for the duration of fn.
func (s *BaseForumSuite) WithConnection(name string, fn func(ctx context.Context, conn *websocket.Conn)) {
	s.Step(name)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws://"+s.Config.ForumAddr+"/api/v3/ws", nil)
	s.Require().NoError(err)
	defer conn.Close(websocket.StatusNormalClosure, "")
	fn(ctx, conn)
}

func (s *BaseForumSuite) Send(ctx context.Context, conn *websocket.Conn, op string, data any) Frame {
	s.Require().NoError(wsjson.Write(ctx, conn, map[string]any{"op": op, "data": data}))
	return s.Read(ctx, conn)
}

func (s *BaseForumSuite) Read(ctx context.Context, conn *websocket.Conn) Frame {
	var frame Frame
	s.Require().NoError(wsjson.Read(ctx, conn, &frame))
	if s.Config.DebugJSON {
		s.T().Logf("FRAME: %s %s %s", frame.Op, frame.Data, frame.Error)
	}
	return frame
}

// WithHealth provides a gRPC health client within a contextual test step
func (s *BaseForumSuite) WithHealth(name string, fn func(ctx context.Context, client grpc_health_v1.HealthClient)) {
	s.Step(name)
	if s.Config.HealthAddr == "" {
		s.T().Log("FORUM_HEALTH_ADDR is not set, skipping")
		return
	}
	conn, err := grpc.NewClient(s.Config.HealthAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	fn(ctx, grpc_health_v1.NewHealthClient(conn))
}
