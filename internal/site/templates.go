package site

// templateVersion participates in the render-cache key so template or
// asset changes invalidate previously cached pages.
const templateVersion = "2"

// pageTemplate is the html/template for every generated page. The header
// markup is the contract internal/dom binds against: element ids,
// aria-controls associations, and the dropdown/expand id naming.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.SiteTitle}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-page="{{.RelPath}}" data-base="{{.BasePath}}">
  <header class="site-header">
    <a class="site-header__title" href="{{.BasePath}}index.html">{{.SiteTitle}}</a>
    <button id="hamburger" class="hamburger" aria-label="Toggle navigation">
      <span class="hamburger__bar"></span>
      <span class="hamburger__bar"></span>
      <span class="hamburger__bar"></span>
    </button>
    <nav class="site-nav">
      <ul id="site-nav-items" class="site-nav__items">
        {{- range .Menu.Items}}
        <li class="dropdown">
          <button class="dropdown__button" aria-controls="{{.PanelID}}">
            {{.Label}}
            <span id="{{.IconID}}" class="dropdown__expand">&#9662;</span>
          </button>
          <ul id="{{.PanelID}}" class="dropdown__items">
            {{- $base := $.BasePath}}
            {{- range .Pages}}
            <li><a href="{{$base}}{{.Href}}">{{.Title}}</a></li>
            {{- end}}
          </ul>
        </li>
        {{- end}}
      </ul>
    </nav>
  </header>
  <main class="page-content">
    {{.Content}}
  </main>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// styleCSS returns the site stylesheet. Visual open/closed state is
// driven entirely by the presence of the *--open tokens; the controllers
// only add and remove those classes.
func (g *Generator) styleCSS() string {
	return `:root {
  --bg: #ffffff;
  --bg-secondary: #f6f8fa;
  --text: #1f2328;
  --text-muted: #59636e;
  --border: #d1d9e0;
  --accent: ` + g.Accent + `;
  --content-max-width: 820px;
  --header-height: 56px;
}

*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
}

/* ============ Header ============ */
.site-header {
  display: flex;
  align-items: center;
  height: var(--header-height);
  padding: 0 20px;
  border-bottom: 1px solid var(--border);
  position: sticky;
  top: 0;
  background: var(--bg);
  z-index: 100;
}

.site-header__title {
  font-size: 1.05rem;
  font-weight: 700;
  color: var(--accent);
  text-decoration: none;
  margin-right: auto;
}

/* ============ Hamburger ============ */
.hamburger {
  display: none;
  flex-direction: column;
  justify-content: center;
  gap: 4px;
  width: 36px;
  height: 36px;
  padding: 6px;
  background: none;
  border: none;
  cursor: pointer;
}

.hamburger__bar {
  height: 2px;
  width: 100%;
  background: var(--text);
  border-radius: 1px;
  transition: transform 0.2s, opacity 0.2s;
}

.hamburger--open .hamburger__bar:nth-child(1) {
  transform: translateY(6px) rotate(45deg);
}

.hamburger--open .hamburger__bar:nth-child(2) {
  opacity: 0;
}

.hamburger--open .hamburger__bar:nth-child(3) {
  transform: translateY(-6px) rotate(-45deg);
}

/* ============ Nav & dropdowns ============ */
.site-nav__items {
  display: flex;
  gap: 4px;
  list-style: none;
}

.dropdown {
  position: relative;
}

.dropdown__button {
  display: flex;
  align-items: center;
  gap: 6px;
  padding: 8px 12px;
  font-size: 0.9rem;
  color: var(--text);
  background: none;
  border: none;
  border-radius: 6px;
  cursor: pointer;
}

.dropdown__button:hover {
  background: var(--bg-secondary);
}

.dropdown__expand {
  font-size: 0.7rem;
  color: var(--text-muted);
  transition: transform 0.15s;
}

.dropdown__expand--open {
  transform: rotate(180deg);
}

.dropdown__items {
  display: none;
  position: absolute;
  top: 100%;
  right: 0;
  min-width: 220px;
  padding: 6px 0;
  list-style: none;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 8px;
  box-shadow: 0 4px 12px rgba(0,0,0,0.1);
}

.dropdown__items--open {
  display: block;
}

.dropdown__items a {
  display: block;
  padding: 6px 14px;
  font-size: 0.88rem;
  color: var(--text);
  text-decoration: none;
}

.dropdown__items a:hover {
  background: var(--bg-secondary);
  color: var(--accent);
}

/* ============ Content ============ */
.page-content {
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 32px 24px 64px;
}

.page-content h1 {
  font-size: 1.9rem;
  margin: 0 0 16px;
  padding-bottom: 8px;
  border-bottom: 1px solid var(--border);
}

.page-content h2 {
  font-size: 1.4rem;
  margin: 28px 0 12px;
}

.page-content h3 {
  font-size: 1.15rem;
  margin: 20px 0 8px;
}

.page-content p,
.page-content ul,
.page-content ol {
  margin: 0 0 16px;
}

.page-content ul,
.page-content ol {
  padding-left: 24px;
}

.page-content a {
  color: var(--accent);
  text-decoration: none;
}

.page-content a:hover {
  text-decoration: underline;
}

.page-content code {
  font-family: "SF Mono", Consolas, monospace;
  font-size: 0.88em;
  background: var(--bg-secondary);
  padding: 2px 6px;
  border-radius: 4px;
}

.page-content pre {
  margin: 0 0 16px;
  padding: 14px;
  border: 1px solid var(--border);
  border-radius: 8px;
  overflow-x: auto;
}

.page-content pre code {
  padding: 0;
  background: none;
}

.page-content blockquote {
  border-left: 3px solid var(--accent);
  padding: 4px 16px;
  margin: 0 0 16px;
  color: var(--text-muted);
}

.page-content table {
  border-collapse: collapse;
  margin: 0 0 16px;
  width: 100%;
  font-size: 0.9rem;
}

.page-content th,
.page-content td {
  border: 1px solid var(--border);
  padding: 8px 12px;
  text-align: left;
}

.page-content thead th {
  background: var(--bg-secondary);
}

/* ============ Mobile ============ */
@media (max-width: 720px) {
  .hamburger {
    display: flex;
  }

  .site-nav__items {
    display: none;
    position: absolute;
    top: var(--header-height);
    left: 0;
    right: 0;
    flex-direction: column;
    gap: 0;
    padding: 8px 12px;
    background: var(--bg);
    border-bottom: 1px solid var(--border);
    box-shadow: 0 8px 16px rgba(0,0,0,0.08);
  }

  .site-nav__items--open {
    display: flex;
  }

  .dropdown__items {
    position: static;
    min-width: 0;
    border: none;
    box-shadow: none;
    padding-left: 16px;
  }
}`
}

// shimJS is the browser shim. When the preview websocket is reachable it
// forwards header clicks to the server and replays the returned class
// patches, so the Go controllers drive the page. On the published static
// site it falls back to performing the same class toggles locally.
const shimJS = `(function() {
  "use strict";

  var HAMBURGER_ID = "hamburger";
  var NAV_PANEL_ID = "site-nav-items";

  var body = document.body;
  var page = body.getAttribute("data-page") || "index.html";

  var sock = null;

  function applyPatches(patches) {
    patches.forEach(function(p) {
      var el = document.getElementById(p.id);
      if (!el) return;
      el.classList.toggle(p.class, p.on);
    });
  }

  // Local fallback mirrors the server-side controllers: hamburger flips
  // panel and icon together; a dropdown click closes siblings before
  // flipping its own panel and icon.
  function localHamburgerClick() {
    document.getElementById(NAV_PANEL_ID).classList.toggle("site-nav__items--open");
    document.getElementById(HAMBURGER_ID).classList.toggle("hamburger--open");
  }

  function localDropdownClick(panelId) {
    var panel = document.getElementById(panelId);
    var icon = document.getElementById(panelId.replace("items", "expand"));
    document.querySelectorAll(".dropdown__items").forEach(function(p) {
      if (p !== panel) p.classList.remove("dropdown__items--open");
    });
    document.querySelectorAll(".dropdown__expand").forEach(function(i) {
      if (i !== icon) i.classList.remove("dropdown__expand--open");
    });
    panel.classList.toggle("dropdown__items--open");
    if (icon) icon.classList.toggle("dropdown__expand--open");
  }

  function sendClick(target, fallback) {
    if (sock && sock.readyState === WebSocket.OPEN) {
      sock.send(JSON.stringify({ type: "click", target: target }));
    } else {
      fallback();
    }
  }

  var hamburger = document.getElementById(HAMBURGER_ID);
  if (hamburger) {
    hamburger.addEventListener("click", function() {
      sendClick(HAMBURGER_ID, localHamburgerClick);
    });
  }

  document.querySelectorAll(".dropdown__button").forEach(function(btn) {
    var panelId = btn.getAttribute("aria-controls");
    btn.addEventListener("click", function() {
      sendClick(panelId, function() { localDropdownClick(panelId); });
    });
  });

  // Preview sockets are only reachable under the dev server.
  if (location.protocol === "http:" || location.protocol === "https:") {
    var wsProto = location.protocol === "https:" ? "wss://" : "ws://";
    try {
      sock = new WebSocket(wsProto + location.host + "/ws/nav?page=" + encodeURIComponent(page));
      sock.onmessage = function(ev) {
        var msg = JSON.parse(ev.data);
        if (msg.type === "patch") applyPatches(msg.patches);
      };

      var reload = new WebSocket(wsProto + location.host + "/ws/reload");
      reload.onmessage = function() { location.reload(); };
    } catch (e) {
      sock = null;
    }
  }
})();
`
