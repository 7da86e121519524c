// Command cli is a small client for the FocusFlow backend.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// ---- config/token store ----

type tokenFile struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "focusflow")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "focusflow")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveToken(tf tokenFile) error {
	_ = os.MkdirAll(cfgDir(), 0o700)
	f, err := os.Create(tokenPath())
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tf)
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.Token == "" || (!tf.ExpiresAt.IsZero() && time.Now().After(tf.ExpiresAt)) {
		return "", errors.New("no valid token (login required)")
	}
	return tf.Token, nil
}

// ---- http ----

type client struct {
	base   string
	bearer string
	hc     *http.Client
}

// call sends a JSON request and decodes the JSON response body.
func (c *client) call(method, path string, body any) (map[string]any, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequest(method, c.base+path, &buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	out := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= 400 {
		msg, _ := out["message"].(string)
		return out, fmt.Errorf("server: %d %s", resp.StatusCode, msg)
	}
	return out, nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func usage() {
	fmt.Fprintf(os.Stderr, `focusflow CLI
Usage:
  cli -addr http://HOST:PORT <cmd> [args]

Commands:
  signup     -u <username> -e <email> -p <password>
  login      -e <email> -p <password>              (saves token)
  profile
  task-add   -date YYYY-MM-DD -task <title> [-time HH:MM] [-icon x] [-color x] [-dur x]
  task-list  -date YYYY-MM-DD
  task-rm    -id <uuid>
`)
	os.Exit(2)
}

// ---- main ----

// main dispatches subcommands against the HTTP API.
func main() {
	addr := flag.String("addr", "http://localhost:8080", "backend base URL")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}

	c := &client{base: *addr, hc: &http.Client{Timeout: 15 * time.Second}}
	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	var err error
	switch cmd {
	case "signup":
		err = cmdSignup(c, args)
	case "login":
		err = cmdLogin(c, args)
	case "profile":
		err = withAuth(c, func() error { return cmdGet(c, "/profile") })
	case "task-add":
		err = withAuth(c, func() error { return cmdTaskAdd(c, args) })
	case "task-list":
		err = withAuth(c, func() error { return cmdTaskList(c, args) })
	case "task-rm":
		err = withAuth(c, func() error { return cmdTaskRm(c, args) })
	default:
		usage()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func withAuth(c *client, fn func() error) error {
	tok, err := loadToken()
	if err != nil {
		return err
	}
	c.bearer = tok
	return fn()
}

func cmdSignup(c *client, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	u := fs.String("u", "", "username")
	e := fs.String("e", "", "email")
	p := fs.String("p", "", "password")
	_ = fs.Parse(args)

	out, err := c.call(http.MethodPost, "/signup", map[string]string{
		"username": *u, "email": *e, "password": *p,
	})
	if err != nil {
		return err
	}
	printJSON(out)
	return nil
}

func cmdLogin(c *client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	e := fs.String("e", "", "email")
	p := fs.String("p", "", "password")
	_ = fs.Parse(args)

	out, err := c.call(http.MethodPost, "/login", map[string]string{
		"email": *e, "password": *p,
	})
	if err != nil {
		return err
	}
	tok, _ := out["token"].(string)
	uid, _ := out["user_id"].(string)
	if err := saveToken(tokenFile{Token: tok, UserID: uid}); err != nil {
		return err
	}
	fmt.Println("logged in, token saved")
	return nil
}

func cmdGet(c *client, path string) error {
	out, err := c.call(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	printJSON(out)
	return nil
}

func cmdTaskAdd(c *client, args []string) error {
	fs := flag.NewFlagSet("task-add", flag.ExitOnError)
	date := fs.String("date", "", "date YYYY-MM-DD")
	title := fs.String("task", "", "task title")
	tm := fs.String("time", "", "time HH:MM")
	icon := fs.String("icon", "", "icon")
	color := fs.String("color", "", "color")
	dur := fs.String("dur", "", "duration")
	_ = fs.Parse(args)

	out, err := c.call(http.MethodPost, "/tasks", map[string]string{
		"date": *date, "time": *tm, "task": *title,
		"icon": *icon, "color": *color, "duration": *dur,
	})
	if err != nil {
		return err
	}
	printJSON(out)
	return nil
}

func cmdTaskList(c *client, args []string) error {
	fs := flag.NewFlagSet("task-list", flag.ExitOnError)
	date := fs.String("date", "", "date YYYY-MM-DD")
	_ = fs.Parse(args)

	return cmdGet(c, "/tasks?date="+*date)
}

func cmdTaskRm(c *client, args []string) error {
	fs := flag.NewFlagSet("task-rm", flag.ExitOnError)
	id := fs.String("id", "", "task id")
	_ = fs.Parse(args)

	out, err := c.call(http.MethodDelete, "/tasks/"+*id, nil)
	if err != nil {
		return err
	}
	printJSON(out)
	return nil
}
