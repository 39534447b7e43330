package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// The markdown engine supports a call-to-action shorthand:
//
//	[!button|Label](https://example.com)
//
// which renders as an anchor with inline styling, since most email clients
// ignore stylesheets.

type buttonNode struct {
	ast.BaseInline
	url   []byte
	label []byte
}

var kindButton = ast.NewNodeKind("EmailButton")

func (n *buttonNode) Kind() ast.NodeKind { return kindButton }

func (n *buttonNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

var buttonMarker = []byte("[!button|")

type buttonParser struct{}

func (p *buttonParser) Trigger() []byte { return []byte{'['} }

func (p *buttonParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, buttonMarker) {
		return nil
	}

	rest := line[len(buttonMarker):]
	labelEnd := bytes.IndexByte(rest, ']')
	if labelEnd < 0 || labelEnd+1 >= len(rest) || rest[labelEnd+1] != '(' {
		return nil
	}
	urlEnd := bytes.IndexByte(rest[labelEnd+2:], ')')
	if urlEnd < 0 {
		return nil
	}

	node := &buttonNode{
		label: rest[:labelEnd],
		url:   rest[labelEnd+2 : labelEnd+2+urlEnd],
	}
	block.Advance(len(buttonMarker) + labelEnd + 2 + urlEnd + 1)
	return node
}

const buttonStyle = "display:inline-block;padding:12px 24px;background-color:#2563eb;" +
	"color:#ffffff;text-decoration:none;border-radius:6px"

type buttonRenderer struct{}

func (r *buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindButton, r.render)
}

func (r *buttonRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*buttonNode)

	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(n.url))
	_, _ = w.WriteString(`" class="btn" style="` + buttonStyle + `">`)
	_, _ = w.Write(util.EscapeHTML(n.label))
	_, _ = w.WriteString(`</a>`)
	return ast.WalkContinue, nil
}

type buttonExtension struct{}

func (e *buttonExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&buttonParser{}, 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&buttonRenderer{}, 50),
	))
}

func newButtonExtension() goldmark.Extender {
	return &buttonExtension{}
}
