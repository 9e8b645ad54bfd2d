package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/rs/zerolog"
	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/gauntlet/src/domain"
)

var secret = []byte("foobar")

func TestMain(m *testing.M) {
	go startDnsServer()

	for {
		_, err := net.Dial("udp", "127.0.0.1:10053")
		if err == nil {
			break
		}
		time.Sleep(1 * time.Millisecond)
	}
	os.Exit(m.Run())
}

func newHandler(apiUrl string) handler {
	return handler{
		clientConfig: &dns.ClientConfig{
			Servers: []string{"127.0.0.1"},
			Port:    "10053",
		},
		secret:  secret,
		log:     zerolog.Nop(),
		apiUrl:  apiUrl,
		srvName: "_gauntlet._tcp.service.consul",
		client:  newClient(zerolog.Nop()),
	}
}

func sign(t *testing.T, fixture string) string {
	body, err := os.ReadFile(fixture)
	require.NoError(t, err)
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestForwardsPushViaSRV(t *testing.T) {
	fixture := "testdata/push_main.json"
	h := newHandler("")

	mock := apitest.NewMock().
		Post("http://127.0.0.1:1234/api/event").
		Header("Content-Type", "application/json").
		JSON(`{
			"type": "push",
			"ref": "refs/heads/main",
			"repository": "example/simeon",
			"revision": "9f1c2d7e4b0a5c3e8d6f1a2b3c4d5e6f7a8b9c0d",
			"source": "git::https://github.com/example/simeon.git?ref=9f1c2d7e4b0a5c3e8d6f1a2b3c4d5e6f7a8b9c0d"
		}`).
		RespondWith().
		Status(http.StatusAccepted).
		Header("Content-Type", "application/json").
		Body(`{"triggered": true}`).
		End()

	apitest.New().Handler(h).
		HttpClient(h.client.HTTPClient).
		Mocks(mock).
		Method("POST").
		URL("/").
		Header("X-Hub-Signature-256", sign(t, fixture)).
		Header("X-GitHub-Event", "push").
		BodyFromFile(fixture).
		Expect(t).
		Body(`{"triggered": true}`).
		Status(http.StatusAccepted).
		End()
}

func TestForwardsPullRequestWithToken(t *testing.T) {
	fixture := "testdata/pull_request_opened.json"
	h := newHandler("http://gauntlet.example/api")
	h.apiToken = "s3cret"

	mock := apitest.NewMock().
		Post("http://gauntlet.example/api/event").
		Header("Authorization", "Bearer s3cret").
		JSON(`{
			"type": "pull_request",
			"ref": "refs/pull/42/head",
			"base_ref": "master",
			"repository": "example/simeon",
			"revision": "4e2a7b1c9d8f6e5a3b2c1d0e9f8a7b6c5d4e3f2a",
			"source": "git::https://github.com/example/simeon.git?ref=4e2a7b1c9d8f6e5a3b2c1d0e9f8a7b6c5d4e3f2a"
		}`).
		RespondWith().
		Status(http.StatusOK).
		Body(`{"triggered": false}`).
		End()

	apitest.New().Handler(h).
		HttpClient(h.client.HTTPClient).
		Mocks(mock).
		Method("POST").
		URL("/").
		Header("X-Hub-Signature-256", sign(t, fixture)).
		Header("X-GitHub-Event", "pull_request").
		BodyFromFile(fixture).
		Expect(t).
		Body(`{"triggered": false}`).
		Status(http.StatusOK).
		End()
}

func TestIgnoresOtherEvents(t *testing.T) {
	h := newHandler("http://gauntlet.example/api")

	for event, fixture := range map[string]string{
		"pull_request": "testdata/pull_request_closed.json",
		"issues":       "testdata/push_main.json",
	} {
		apitest.New().Handler(h).
			Method("POST").
			URL("/").
			Header("X-Hub-Signature-256", sign(t, fixture)).
			Header("X-GitHub-Event", event).
			BodyFromFile(fixture).
			Expect(t).
			Body(`ignored`).
			Status(http.StatusOK).
			End()
	}
}

func TestRejectsInvalidSignature(t *testing.T) {
	h := newHandler("http://gauntlet.example/api")

	for _, signature := range []string{
		"",
		"sha1=26f0d79bd4b0aafbe0c6469bb3ee761d5b0e88d2",
		"sha256=26f0d79bd4b0aafbe0c6469bb3ee761d5b0e88d2c2387655178981841d4ea9a1",
		"sha256=not-hex",
	} {
		apitest.New().Handler(h).
			Method("POST").
			URL("/").
			Header("X-Hub-Signature-256", signature).
			Header("X-GitHub-Event", "push").
			BodyFromFile("testdata/push_main.json").
			Expect(t).
			Status(http.StatusBadRequest).
			End()
	}
}

func TestTranslateDeletedBranch(t *testing.T) {
	event, err := translate("push", []byte(`{"ref": "refs/heads/main", "deleted": true}`))
	assert.NoError(t, err)
	assert.Nil(t, event)

	event, err = translate("push", []byte(`{"ref": "refs/tags/v1.0.0"}`))
	assert.NoError(t, err)
	assert.Nil(t, event)

	event, err = translate("pull_request", []byte(`{"action": "synchronize", "pull_request": {"number": 1, "base": {"ref": "main"}}}`))
	require.NoError(t, err)
	assert.Equal(t, domain.EventTypePullRequest, event.Type)
	assert.Equal(t, "main", event.Branch())
	assert.Empty(t, event.Source)
}

func startDnsServer() {
	parseQuery := func(m *dns.Msg) {
		for _, q := range m.Question {
			switch q.Qtype {
			default:
				rr, err := dns.NewRR(fmt.Sprintf("%s A %s", q.Name, "127.0.0.1"))
				if err != nil {
					log.Fatalf("failed to create RR: %s\n", err)
				}
				m.Answer = append(m.Answer, rr)
			case dns.TypeSRV:
				priority := 1
				weight := 1
				port := 1234
				for _, host := range []string{"0a187988.addr.eu-central-1.consul", "0a187989.addr.eu-central-1.consul"} {
					rr, err := dns.NewRR(fmt.Sprintf("%s SRV %d %d %d %s", q.Name, priority, weight, port, host))
					if err != nil {
						log.Fatalf("failed to create RR: %s\n", err)
					}
					m.Answer = append(m.Answer, rr)
				}
			}
		}
	}

	handleDnsRequest := func(w dns.ResponseWriter, r *dns.Msg) {
		m := &dns.Msg{}
		m.SetReply(r)
		m.Compress = false

		if r.Opcode == dns.OpcodeQuery {
			parseQuery(m)
		}

		_ = w.WriteMsg(m)
	}

	dns.HandleFunc("consul.", handleDnsRequest)

	port := 10053
	server := &dns.Server{Addr: ":" + strconv.Itoa(port), Net: "udp"}
	log.Printf("Starting at %d\n", port)
	err := server.ListenAndServe()
	if err != nil {
		log.Fatalf("Failed to start server: %s\n ", err.Error())
	}
}
