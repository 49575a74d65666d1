package scaffold

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type CodeBlock struct {
	Hint    string
	Lang    string
	Content string
}

// ExtractCodeBlocks returns every fenced code block in document order. Hint
// is the raw source of the paragraph directly above the block, if any.
func ExtractCodeBlocks(source []byte) ([]CodeBlock, error) {
	var blocks []CodeBlock
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fenced, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		block := CodeBlock{
			Lang:    string(fenced.Language(source)),
			Content: rawLines(fenced, source),
		}
		if p, ok := fenced.PreviousSibling().(*ast.Paragraph); ok {
			block.Hint = strings.TrimSpace(rawLines(p, source))
		}

		blocks = append(blocks, block)
		return ast.WalkSkipChildren, nil
	}

	if err := ast.Walk(root, walker); err != nil {
		return nil, err
	}
	return blocks, nil
}

func rawLines(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}
