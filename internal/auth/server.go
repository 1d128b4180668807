package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	// CallbackPort must match the redirect URL registered with RunBeacon
	CallbackPort = 8089
	// AuthTimeout bounds how long we wait for the browser round trip
	AuthTimeout = 5 * time.Minute
)

const callbackPage = `<!DOCTYPE html>
<html>
<head><title>ZoneCoach</title></head>
<body style="font-family: sans-serif; margin-top: 20vh; text-align: center;">
<h1>Connected to RunBeacon</h1>
<p>ZoneCoach is authorized. Close this tab and head back to the terminal.</p>
</body>
</html>`

// callbackResult is what the one-shot callback handler produces: either an
// authorization code or the reason the flow failed.
type callbackResult struct {
	code string
	err  error
}

// callbackServer is a short-lived local HTTP server that catches the OAuth
// redirect from RunBeacon.
type callbackServer struct {
	srv     *http.Server
	state   string
	results chan callbackResult
}

func newCallbackServer() (*callbackServer, error) {
	state, err := randomState()
	if err != nil {
		return nil, fmt.Errorf("generating state: %w", err)
	}

	cs := &callbackServer{
		state:   state,
		results: make(chan callbackResult, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", cs.handleCallback)
	cs.srv = &http.Server{Handler: mux}
	return cs, nil
}

func (cs *callbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	switch {
	case q.Get("state") != cs.state:
		http.Error(w, "State mismatch", http.StatusBadRequest)
		cs.results <- callbackResult{err: fmt.Errorf("callback state mismatch")}
	case q.Get("error") != "":
		http.Error(w, "Authorization denied", http.StatusBadRequest)
		cs.results <- callbackResult{err: fmt.Errorf("authorization denied: %s", q.Get("error"))}
	case q.Get("code") == "":
		http.Error(w, "Missing authorization code", http.StatusBadRequest)
		cs.results <- callbackResult{err: fmt.Errorf("callback carried no authorization code")}
	default:
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, callbackPage)
		cs.results <- callbackResult{code: q.Get("code")}
	}
}

func (cs *callbackServer) listen() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", CallbackPort))
	if err != nil {
		return fmt.Errorf("starting callback server: %w", err)
	}
	go func() {
		if err := cs.srv.Serve(ln); err != http.ErrServerClosed {
			cs.results <- callbackResult{err: fmt.Errorf("callback server: %w", err)}
		}
	}()
	return nil
}

// wait blocks until the redirect lands, the timeout elapses, or ctx is done
func (cs *callbackServer) wait(ctx context.Context) (string, error) {
	select {
	case res := <-cs.results:
		return res.code, res.err
	case <-time.After(AuthTimeout):
		return "", fmt.Errorf("no callback within %v", AuthTimeout)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (cs *callbackServer) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cs.srv.Shutdown(ctx)
}

// Authenticate runs the browser-based OAuth flow and returns the token plus
// the RunBeacon user it belongs to
func Authenticate(ctx context.Context, cfg *oauth2.Config) (*AuthResult, error) {
	cs, err := newCallbackServer()
	if err != nil {
		return nil, err
	}
	if err := cs.listen(); err != nil {
		return nil, err
	}
	defer cs.stop()

	fmt.Println()
	fmt.Println("To connect ZoneCoach to RunBeacon, open this URL in your browser:")
	fmt.Println()
	fmt.Printf("  %s\n", cfg.AuthCodeURL(cs.state, oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Println("Waiting for authorization...")

	code, err := cs.wait(ctx)
	if err != nil {
		return nil, err
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging code for token: %w", err)
	}

	return &AuthResult{Token: token, UserID: ExtractUserID(token)}, nil
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
