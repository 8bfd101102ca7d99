package server

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/oceanum/seawater/gsw"
	"github.com/oceanum/seawater/saar"
)

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func testHub() *Hub {
	return NewHub(nil, quietLog(), 4)
}

// atlasHub serves a constant anomaly over a small Pacific box.
func atlasHub(t *testing.T, dsa float64) *Hub {
	t.Helper()
	lon := []float64{180, 190}
	lat := []float64{0, 10}
	p := []float64{0, 1000, 2000}
	levels := make([]*mat.Dense, len(p))
	for k := range levels {
		levels[k] = mat.NewDense(2, 2, []float64{dsa, dsa, dsa, dsa})
	}
	ndepth := mat.NewDense(2, 2, []float64{2, 2, 2, 2})
	a, err := saar.New(lon, lat, p, levels, ndepth)
	require.NoError(t, err)
	return NewHub(gsw.NewSalinity(a), quietLog(), 4)
}

func TestHubEvalProperty(t *testing.T) {
	h := testHub()

	resp := h.eval(Request{
		ID: 7, Op: "rho",
		SA: []float64{34.7118},
		T:  []float64{28.7856},
		P:  []float64{10},
	})
	assert.Equal(t, 7, resp.ID)
	assert.Empty(t, resp.Error)
	require.Len(t, resp.Result, 1)
	require.NotNil(t, resp.Result[0])
	assert.InDelta(t, 1021.84017319, *resp.Result[0], 1e-6)
}

func TestHubEvalBroadcast(t *testing.T) {
	h := testHub()

	resp := h.eval(Request{
		Op: "entropy",
		SA: []float64{34.7118, 34.8915},
		T:  []float64{28.7856, 28.4329},
		P:  []float64{10},
	})
	assert.Empty(t, resp.Error)
	assert.Len(t, resp.Result, 2)
}

func TestHubEvalUndefinedAsNull(t *testing.T) {
	h := testHub()

	resp := h.eval(Request{
		Op: "rho",
		SA: []float64{34.7, math.NaN()},
		T:  []float64{15, 15},
		P:  []float64{0, 0},
	})
	assert.Empty(t, resp.Error)
	require.Len(t, resp.Result, 2)
	assert.NotNil(t, resp.Result[0])
	assert.Nil(t, resp.Result[1])
}

func TestHubEvalErrors(t *testing.T) {
	h := testHub()

	t.Run("UnknownOp", func(t *testing.T) {
		resp := h.eval(Request{Op: "frobnicate"})
		assert.Contains(t, resp.Error, "unknown op")
	})

	t.Run("SalinityWithoutAtlas", func(t *testing.T) {
		resp := h.eval(Request{Op: "sa_from_sp",
			SP: []float64{34.5}, P: []float64{10},
			Lon: []float64{188}, Lat: []float64{4}})
		assert.Contains(t, resp.Error, "atlas")
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		resp := h.eval(Request{Op: "rho",
			SA: []float64{34.7, 35},
			T:  []float64{15, 15, 15},
			P:  []float64{0}})
		assert.NotEmpty(t, resp.Error)
	})
}

func TestHubEvalSstar(t *testing.T) {
	h := atlasHub(t, 0.005)

	sp := []float64{34.5487}
	p := []float64{10}
	lon := []float64{188}
	lat := []float64{4}

	star := h.eval(Request{Op: "sstar_from_sp", SP: sp, P: p, Lon: lon, Lat: lat})
	require.Empty(t, star.Error)
	require.Len(t, star.Result, 1)
	require.NotNil(t, star.Result[0])

	back := h.eval(Request{Op: "sp_from_sstar",
		Sstar: []float64{*star.Result[0]}, P: p, Lon: lon, Lat: lat})
	require.Empty(t, back.Error)
	require.NotNil(t, back.Result[0])
	assert.InDelta(t, sp[0], *back.Result[0], 1e-10)

	sa := h.eval(Request{Op: "sa_from_sstar",
		Sstar: []float64{*star.Result[0]}, P: p, Lon: lon, Lat: lat})
	require.Empty(t, sa.Error)
	require.NotNil(t, sa.Result[0])
	direct := h.eval(Request{Op: "sa_from_sp", SP: sp, P: p, Lon: lon, Lat: lat})
	require.Empty(t, direct.Error)
	assert.InDelta(t, *direct.Result[0], *sa.Result[0], 1e-10)
}

func TestServeWs(t *testing.T) {
	srv := New(DefaultConfig(), nil, quietLog())

	ts := httptest.NewServer(http.HandlerFunc(srv.serveWs))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	err = conn.WriteJSON(Request{
		ID: 1, Op: "sound_speed",
		SA: []float64{34.7118}, T: []float64{28.7856}, P: []float64{10},
	})
	require.NoError(t, err)

	var resp Response
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "sound_speed", resp.Op)
	require.Len(t, resp.Result, 1)
	require.NotNil(t, resp.Result[0])
	assert.InDelta(t, 1542.61580359, *resp.Result[0], 1e-6)
}

// stalledPeer accepts one write and then refuses, like a client that
// went away while its half of the connection still delivers requests.
type stalledPeer struct {
	writes int
}

func (p *stalledPeer) WriteJSON(interface{}) error {
	if p.writes > 0 {
		return errors.New("broken pipe")
	}
	p.writes++
	return nil
}

func TestWriteResponsesDrainsAfterError(t *testing.T) {
	srv := New(DefaultConfig(), nil, quietLog())
	hub := NewHub(nil, quietLog(), 4)
	go hub.run()

	peer := &stalledPeer{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.writeResponses(peer, hub.responses)
	}()

	// Far more requests than the queues hold. None may stall once the
	// peer has stopped accepting writes.
	for i := 0; i < 64; i++ {
		select {
		case hub.requests <- Request{ID: i, Op: "rho",
			SA: []float64{35}, T: []float64{10}, P: []float64{100}}:
		case <-time.After(2 * time.Second):
			t.Fatal("request queue stalled")
		}
	}
	close(hub.requests)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("response queue was not drained")
	}
	assert.Equal(t, 1, peer.writes)
}
