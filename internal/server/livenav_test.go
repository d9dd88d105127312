package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tbouhar/sitegen/internal/dom"
)

func dialNav(t *testing.T, serverURL, page string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + "/ws/nav?page=" + page
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	return conn
}

func patchFor(t *testing.T, patches []dom.Patch, id string) dom.Patch {
	t.Helper()
	for _, p := range patches {
		if p.ElementID == id {
			return p
		}
	}
	t.Fatalf("no patch for %q in %v", id, patches)
	return dom.Patch{}
}

func TestNavSocketHamburgerClick(t *testing.T) {
	s := setupSite(t)
	server := httptest.NewServer(s.Router())
	defer server.Close()

	conn := dialNav(t, server.URL, "index.html")
	defer conn.Close()

	if err := conn.WriteJSON(clickMessage{Type: "click", Target: dom.IDHamburger}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var resp patchMessage
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}

	if resp.Type != "patch" {
		t.Fatalf("reply type = %q, want patch", resp.Type)
	}
	if len(resp.Patches) != 2 {
		t.Fatalf("got %d patches, want 2", len(resp.Patches))
	}

	panel := patchFor(t, resp.Patches, dom.IDNavPanel)
	if panel.Class != dom.ClassNavPanelOpen || !panel.On {
		t.Errorf("panel patch = %+v, want %s on", panel, dom.ClassNavPanelOpen)
	}
	icon := patchFor(t, resp.Patches, dom.IDHamburger)
	if icon.Class != dom.ClassHamburgerOpen || !icon.On {
		t.Errorf("icon patch = %+v, want %s on", icon, dom.ClassHamburgerOpen)
	}
}

func TestNavSocketDropdownSwitch(t *testing.T) {
	s := setupSite(t)
	server := httptest.NewServer(s.Router())
	defer server.Close()

	conn := dialNav(t, server.URL, "index.html")
	defer conn.Close()

	if err := conn.WriteJSON(clickMessage{Type: "click", Target: "dropdown-items-guides"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var first patchMessage
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(first.Patches) != 2 {
		t.Fatalf("opening guides produced %d patches, want 2", len(first.Patches))
	}

	// Clicking blog closes guides and opens blog in one reply.
	if err := conn.WriteJSON(clickMessage{Type: "click", Target: "dropdown-items-blog"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var second patchMessage
	if err := conn.ReadJSON(&second); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(second.Patches) != 4 {
		t.Fatalf("switching produced %d patches, want 4", len(second.Patches))
	}

	guides := patchFor(t, second.Patches, "dropdown-items-guides")
	if guides.On {
		t.Error("guides panel should be closed after switching")
	}
	blog := patchFor(t, second.Patches, "dropdown-items-blog")
	if !blog.On || blog.Class != dom.ClassDropdownItemsOpen {
		t.Errorf("blog patch = %+v, want %s on", blog, dom.ClassDropdownItemsOpen)
	}
}

func TestNavSocketUnknownTarget(t *testing.T) {
	s := setupSite(t)
	server := httptest.NewServer(s.Router())
	defer server.Close()

	conn := dialNav(t, server.URL, "index.html")
	defer conn.Close()

	if err := conn.WriteJSON(clickMessage{Type: "click", Target: "no-such-panel"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var resp errorMessage
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Type != "error" {
		t.Errorf("reply type = %q, want error", resp.Type)
	}
	if !strings.Contains(resp.Error, "no-such-panel") {
		t.Errorf("error %q does not name the target", resp.Error)
	}
}

func TestNavSocketSessionsAreIndependent(t *testing.T) {
	s := setupSite(t)
	server := httptest.NewServer(s.Router())
	defer server.Close()

	first := dialNav(t, server.URL, "index.html")
	defer first.Close()
	second := dialNav(t, server.URL, "index.html")
	defer second.Close()

	if err := first.WriteJSON(clickMessage{Type: "click", Target: "dropdown-items-guides"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var resp patchMessage
	if err := first.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}

	// Opening guides on the second session must not see the first
	// session's state, so it toggles open rather than closing.
	if err := second.WriteJSON(clickMessage{Type: "click", Target: "dropdown-items-guides"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := second.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	guides := patchFor(t, resp.Patches, "dropdown-items-guides")
	if !guides.On {
		t.Error("second session saw first session's open state")
	}
}

func TestNavSocketMissingPage(t *testing.T) {
	s := setupSite(t)
	server := httptest.NewServer(s.Router())
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/nav?page=missing.html"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		t.Fatal("dial should fail for a missing page")
	}
	if resp == nil || resp.StatusCode != 404 {
		t.Errorf("expected 404 handshake response, got %+v", resp)
	}
}

func TestReloadBroadcast(t *testing.T) {
	s := setupSite(t)
	server := httptest.NewServer(s.Router())
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/reload"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()

	// The subscription races the broadcast, so wait for registration.
	deadline := time.Now().Add(2 * time.Second)
	for {
		s.reload.mu.Lock()
		n := len(s.reload.conns)
		s.reload.mu.Unlock()
		if n > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("reload subscription never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	s.NotifyReload()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg map[string]string
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg["type"] != "reload" {
		t.Errorf("broadcast type = %q, want reload", msg["type"])
	}
}
