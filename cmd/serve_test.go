package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/beatgrid/model"
	"github.com/stretchr/testify/assert"
)

const reel = `{"header": {"ppq": 480}, "tracks": [
	{"channel": 0, "name": "fiddle", "notes": [
		{"midi": 62, "name": "D4", "ticks": 0, "durationTicks": 240},
		{"midi": 66, "name": "F#4", "ticks": 240, "durationTicks": 240},
		{"midi": 69, "name": "A4", "ticks": 9600, "durationTicks": 480}
	]},
	{"channel": 1, "name": "silent", "notes": []},
	{"channel": 2, "name": "bodhran", "notes": [
		{"midi": 36, "name": "C2", "ticks": 0, "durationTicks": 60}
	]}
]}`

func postGrid(t *testing.T, target string, body string) (*http.Response, []byte) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	HandleGrid(w, req)

	resp := w.Result()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, respBody
}

func TestHandleGrid(t *testing.T) {
	resp, body := postGrid(t, "/grid", reel)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)

	var res model.GridResponse
	assert.NoError(json.Unmarshal(body, &res))
	assert.Len(res.ID, 36)
	assert.Equal(480, res.PPQ)
	assert.Len(res.Tracks, 2)

	fiddle := res.Tracks[0]
	assert.Equal("fiddle", fiddle.Name)
	assert.Equal(96, fiddle.CellCount)
	assert.Equal(model.QuantizedNote{Pitch: 66, Seq: 2, Len: 2, Name: "F#4", Time: 240, Duration: 240}, fiddle.Notes[1])

	assert.Equal(2, res.Tracks[1].SourceTrack)
	assert.Equal(16, res.Tracks[1].CellCount)
	assert.Equal([]model.Notice{{Kind: model.NoticeEmptyTrack, Track: 1, Message: `track 1 "silent" has no notes`}}, res.Notices)
}

func TestHandleGridQueryOptions(t *testing.T) {
	resp, body := postGrid(t, "/grid?maxPatterns=1&coverTails=true", reel)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)

	var res model.GridResponse
	assert.NoError(json.Unmarshal(body, &res))
	assert.Len(res.Tracks, 1)
	assert.Equal(model.NoticeCapacityExceeded, res.Notices[len(res.Notices)-1].Kind)
}

func TestHandleGridErrors(t *testing.T) {
	cases := []struct {
		name   string
		target string
		body   string
		status int
		detail string
	}{
		{"nothing parsed", "/grid", "[]", http.StatusUnprocessableEntity, "No notation could be parsed from the request body."},
		{"empty body", "/grid", "", http.StatusUnprocessableEntity, "No notation could be parsed from the request body."},
		{"bad json", "/grid", "{", http.StatusBadRequest, "The score could not be decoded."},
		{"bad midi", "/grid?format=midi", reel, http.StatusBadRequest, "The score could not be decoded."},
		{"missing tune", "/grid?tune=3", reel, http.StatusBadRequest, "The requested tune does not exist in this score."},
		{"bad tune", "/grid?tune=first", reel, http.StatusBadRequest, "tune must be an integer."},
		{"bad coverTails", "/grid?coverTails=maybe", reel, http.StatusBadRequest, "coverTails must be true or false."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp, body := postGrid(t, c.target, c.body)

			var res model.ErrorResponse
			assert.NoError(t, json.Unmarshal(body, &res))
			assert.Equal(t, c.status, resp.StatusCode)
			assert.Equal(t, c.detail, res.Error)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestRouterHealthAndCORS(t *testing.T) {
	router := NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(`{"status": "ok"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/grid", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(http.StatusMethodNotAllowed, w.Code)
}
