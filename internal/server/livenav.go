package server

import (
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/tbouhar/sitegen/internal/dom"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // dev server only, never exposed publicly
	},
}

type clickMessage struct {
	Type   string `json:"type"`
	Target string `json:"target"`
}

type patchMessage struct {
	Type    string      `json:"type"`
	Patches []dom.Patch `json:"patches"`
}

type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// navSession holds one preview page's parsed document and its bound
// header controllers. Each websocket connection gets its own session,
// so two tabs never share open/closed state.
type navSession struct {
	id     string
	header *dom.Header
}

// handleNavSocket binds the header of the requested page and then
// answers click messages with the class patches they produce.
func (s *Server) handleNavSocket(w http.ResponseWriter, r *http.Request) {
	pagePath, err := s.resolvePage(r.URL.Query().Get("page"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	raw, err := os.ReadFile(pagePath)
	if err != nil {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}

	doc, err := dom.ParseString(string(raw))
	if err != nil {
		http.Error(w, "failed to parse page", http.StatusInternalServerError)
		return
	}
	header, err := dom.Bind(doc)
	if err != nil {
		http.Error(w, "page header does not match the navigation markup: "+err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("nav socket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session := &navSession{
		id:     uuid.New().String(),
		header: header,
	}
	log.Printf("nav session %s opened for %s", session.id, filepath.Base(pagePath))

	for {
		var msg clickMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("nav session %s read error: %v", session.id, err)
			}
			return
		}
		if msg.Type != "click" {
			continue
		}

		if err := session.click(msg.Target); err != nil {
			if werr := conn.WriteJSON(errorMessage{Type: "error", Error: err.Error()}); werr != nil {
				return
			}
			continue
		}

		reply := patchMessage{Type: "patch", Patches: session.header.Journal.Drain()}
		if reply.Patches == nil {
			reply.Patches = []dom.Patch{}
		}
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

func (ns *navSession) click(target string) error {
	if target == dom.IDHamburger {
		ns.header.Hamburger.Click()
		return nil
	}
	return ns.header.Dropdowns.Click(target)
}

// resolvePage maps the page query parameter onto a file inside the
// site directory, rejecting anything that escapes it.
func (s *Server) resolvePage(page string) (string, error) {
	if page == "" {
		page = "index.html"
	}
	page = strings.TrimPrefix(page, "/")
	clean := path.Clean("/" + page)
	if clean == "/" {
		clean = "/index.html"
	}
	if strings.HasSuffix(clean, "/") || !strings.HasSuffix(clean, ".html") {
		clean = strings.TrimSuffix(clean, "/") + "/index.html"
	}
	full := filepath.Join(s.cfg.SiteDir, filepath.FromSlash(clean))

	rel, err := filepath.Rel(s.cfg.SiteDir, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", errInvalidPage
	}
	return full, nil
}

var errInvalidPage = pageError("invalid page path")

type pageError string

func (e pageError) Error() string { return string(e) }

// reloadHub tracks pages subscribed to rebuild notifications.
type reloadHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newReloadHub() *reloadHub {
	return &reloadHub{conns: make(map[*websocket.Conn]bool)}
}

func (h *reloadHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
}

func (h *reloadHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

func (h *reloadHub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(map[string]string{"type": "reload"}); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// handleReloadSocket registers a page for rebuild notifications. The
// client never sends anything meaningful; the read loop only exists to
// notice disconnects.
func (s *Server) handleReloadSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("reload socket upgrade failed: %v", err)
		return
	}
	s.reload.add(conn)
	defer func() {
		s.reload.remove(conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
