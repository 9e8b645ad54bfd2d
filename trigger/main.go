package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/input-output-hk/gauntlet/src/domain"
)

type Config struct {
	Host         string `arg:"--host" default:"0.0.0.0"`
	Port         int    `arg:"--port,env:GAUNTLET_TRIGGER_PORT" default:"8099"`
	SecretPath   string `arg:"--secret-file,required"`
	ApiUrl       string `arg:"--api-url,env:GAUNTLET_API_URL" help:"e.g. http://127.0.0.1:8080/api, looked up via DNS SRV if empty"`
	ApiTokenPath string `arg:"--api-token-file" help:"file that contains the bearer token of the API"`
	SrvName      string `arg:"--srv-name" default:"_gauntlet._tcp.service.consul"`
	ResolvConf   string `arg:"--resolv-conf" default:"/etc/resolv.conf"`
	LogLevel     string `arg:"--log-level" default:"info"`
}

func main() {
	config := Config{}
	arg.MustParse(&config)

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if level, err := zerolog.ParseLevel(config.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("parsing log level")
	} else {
		zerolog.SetGlobalLevel(level)
	}

	clientConfig, err := dns.ClientConfigFromFile(config.ResolvConf)
	if err != nil {
		log.Fatal().Err(err).Msg("reading resolv config")
	}

	secret, err := readSecret(config.SecretPath)
	if err != nil {
		log.Fatal().Err(err).Msg("reading secret file")
	}

	var token []byte
	if config.ApiTokenPath != "" {
		if token, err = readSecret(config.ApiTokenPath); err != nil {
			log.Fatal().Err(err).Msg("reading API token file")
		}
	}

	server := http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler: handler{
			clientConfig: clientConfig,
			secret:       secret,
			log:          log,
			apiUrl:       config.ApiUrl,
			apiToken:     string(token),
			srvName:      config.SrvName,
			client:       newClient(log),
		},
	}

	log.Info().Str("addr", server.Addr).Msg("Starting server")
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("starting server")
	}
}

func readSecret(path string) ([]byte, error) {
	secret, err := os.ReadFile(path)
	return bytes.TrimSuffix(secret, []byte{'\n'}), err
}

func newClient(log zerolog.Logger) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.Logger = leveledLogger{log.With().Str("component", "client").Logger()}
	return client
}

type handler struct {
	clientConfig *dns.ClientConfig
	secret       []byte
	log          zerolog.Logger
	apiUrl       string
	apiToken     string
	srvName      string
	client       *retryablehttp.Client
}

func fail(w http.ResponseWriter, err error, status int) bool {
	if err != nil {
		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, err.Error())
		return true
	}
	return false
}

const acceptedSignature = "sha256"
const MiB = 1048576

func (h handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	eventType := r.Header.Get("X-GitHub-Event")

	h.log.Info().Str("method", r.Method).Str("event", eventType).Msg("request")

	// We limit body sizes to 1MiB, hopefully that is enough
	body, err := io.ReadAll(io.LimitReader(r.Body, MiB))
	if fail(w, errors.WithMessage(err, "reading body"), 400) {
		return
	}

	err = h.validateSignature(
		r.Header.Get("X-Hub-Signature-256"),
		body,
	)
	if fail(w, errors.WithMessage(err, "HMAC invalid"), 400) {
		return
	}

	event, err := translate(eventType, body)
	if fail(w, errors.WithMessage(err, "translating event"), 400) {
		return
	}
	if event == nil {
		h.log.Debug().Str("event", eventType).Msg("ignoring event")
		fmt.Fprint(w, "ignored")
		return
	}

	apiAddr := h.apiUrl
	if apiAddr == "" {
		apiAddr, err = h.lookupSRV(h.srvName)
		if fail(w, errors.WithMessage(err, "Looking up DNS"), 500) {
			return
		}
		apiAddr = fmt.Sprintf("http://%s/api", apiAddr)
	}

	payload, err := json.Marshal(event)
	if fail(w, errors.WithMessage(err, "marshal payload"), 500) {
		return
	}

	req, err := retryablehttp.NewRequestWithContext(r.Context(), http.MethodPost, apiAddr+"/event", payload)
	if fail(w, errors.WithMessage(err, "creating request"), 500) {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if h.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiToken)
	}

	res, err := h.client.Do(req)
	if fail(w, errors.WithMessage(err, "forwarding event"), 502) {
		return
	}
	defer res.Body.Close()

	w.Header().Set("Content-Type", res.Header.Get("Content-Type"))
	w.WriteHeader(res.StatusCode)
	_, _ = io.Copy(w, res.Body)
}

type githubRepository struct {
	FullName string `json:"full_name"`
	CloneUrl string `json:"clone_url"`
}

type githubPush struct {
	Ref        string           `json:"ref"`
	After      string           `json:"after"`
	Deleted    bool             `json:"deleted"`
	Repository githubRepository `json:"repository"`
}

type githubPullRequest struct {
	Action      string `json:"action"`
	PullRequest struct {
		Number int `json:"number"`
		Base   struct {
			Ref string `json:"ref"`
		} `json:"base"`
		Head struct {
			Ref string `json:"ref"`
			Sha string `json:"sha"`
		} `json:"head"`
	} `json:"pull_request"`
	Repository githubRepository `json:"repository"`
}

// translate turns a GitHub webhook into an event.
// It returns nil for webhooks that never start a run.
func translate(eventType string, body []byte) (*domain.Event, error) {
	switch eventType {
	case "push":
		push := githubPush{}
		if err := json.Unmarshal(body, &push); err != nil {
			return nil, err
		}
		if push.Deleted || !strings.HasPrefix(push.Ref, "refs/heads/") {
			return nil, nil
		}
		return &domain.Event{
			Type:       domain.EventTypePush,
			Ref:        push.Ref,
			Repository: push.Repository.FullName,
			Revision:   push.After,
			Source:     source(push.Repository, push.After),
		}, nil
	case "pull_request":
		pr := githubPullRequest{}
		if err := json.Unmarshal(body, &pr); err != nil {
			return nil, err
		}
		switch pr.Action {
		case "opened", "reopened", "synchronize":
		default:
			return nil, nil
		}
		return &domain.Event{
			Type:       domain.EventTypePullRequest,
			Ref:        fmt.Sprintf("refs/pull/%d/head", pr.PullRequest.Number),
			BaseRef:    pr.PullRequest.Base.Ref,
			Repository: pr.Repository.FullName,
			Revision:   pr.PullRequest.Head.Sha,
			Source:     source(pr.Repository, pr.PullRequest.Head.Sha),
		}, nil
	default:
		return nil, nil
	}
}

func source(repository githubRepository, revision string) string {
	if repository.CloneUrl == "" {
		return ""
	}
	return "git::" + repository.CloneUrl + "?ref=" + revision
}

// TODO: Ndot handling and local search,
// maybe replace with https://github.com/benschw/srv-lb
func (h handler) lookupSRV(query string) (string, error) {
	server := fmt.Sprintf("%s:%s", h.clientConfig.Servers[0], h.clientConfig.Port)

	m := &dns.Msg{}
	m.SetQuestion(dns.Fqdn(query), dns.TypeSRV)
	c := &dns.Client{}
	in, _, err := c.Exchange(m, server)
	if err != nil {
		return "", errors.WithMessage(err, "looking up SRV record")
	}

	for _, answer := range in.Answer {
		if srv, ok := answer.(*dns.SRV); ok {
			m := &dns.Msg{}
			m.SetQuestion(dns.Fqdn(srv.Target), dns.TypeA)
			in, _, err := c.Exchange(m, server)
			if err != nil {
				return "", errors.WithMessage(err, "looking up A record")
			}
			for _, answer := range in.Answer {
				if a, ok := answer.(*dns.A); ok {
					return fmt.Sprintf("%s:%d", a.A, srv.Port), nil
				}
			}
		}
	}

	return "", errors.New("No DNS record found")
}

func (h handler) validateSignature(signatureRaw string, body []byte) error {
	signatureType, signature, found := strings.Cut(signatureRaw, "=")
	if !found {
		return fmt.Errorf("Invalid signature %q", signatureRaw)
	}

	if signatureType != acceptedSignature {
		return fmt.Errorf("HMAC Signature type unexpected %q != %q", signatureType, acceptedSignature)
	}

	msgMac, err := hex.DecodeString(signature)
	if err != nil {
		return errors.WithMessage(err, "failed to decode header signature")
	}

	mac := hmac.New(sha256.New, h.secret)
	mac.Write(body)
	if !hmac.Equal(msgMac, mac.Sum(nil)) {
		return fmt.Errorf("HMAC message digest or secret invalid")
	}

	return nil
}

// leveledLogger lets the retrying client log through zerolog.
type leveledLogger struct {
	log zerolog.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...any) {
	l.log.Error().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...any) {
	l.log.Warn().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...any) {
	l.log.Trace().Fields(keysAndValues).Msg(msg)
}
