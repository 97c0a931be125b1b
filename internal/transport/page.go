package transport

import (
	"html/template"

	"github.com/goodnatureofminers/batchview/internal/model"
)

type pageData struct {
	Batch  model.Batch
	Widget template.HTML
	Stream string
}

// The widget markup is replaced with every frame pushed on the stream.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Batch #{{.Batch}}</title>
<style>
.batch { font-family: sans-serif; display: flex; gap: .5em; align-items: center; }
.countdown svg { width: 1.2em; height: 1.2em; transform: rotate(-90deg); }
.countdown circle { fill: none; stroke: #2a9d8f; stroke-width: 4; }
.countdown.urgent circle { stroke: #e76f51; }
</style>
</head>
<body>
<div id="widget">{{.Widget}}</div>
<script>
(function () {
  var scheme = location.protocol === "https:" ? "wss://" : "ws://";
  var socket = new WebSocket(scheme + location.host + {{.Stream}});
  socket.onmessage = function (event) {
    var frame = JSON.parse(event.data);
    if (frame.html) {
      document.getElementById("widget").innerHTML = frame.html;
    }
  };
})();
</script>
</body>
</html>
`))
