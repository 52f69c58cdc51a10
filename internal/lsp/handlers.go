package lsp

import (
	"context"
	"encoding/json"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/conduit-lang/enumgen/internal/tooling"
)

func (s *Server) handleDocumentSymbol(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DocumentSymbolParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse documentSymbol params")
	}

	symbols, err := s.api.DocumentSymbols(string(params.TextDocument.URI))
	if err != nil {
		s.logger.Debug("document symbols", zap.Error(err))
		return reply(ctx, []protocol.DocumentSymbol{}, nil)
	}

	return reply(ctx, toDocumentSymbols(symbols), nil)
}

func (s *Server) handleHover(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.HoverParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse hover params")
	}

	hover, err := s.api.Hover(string(params.TextDocument.URI), tooling.Position{
		Line:      int(params.Position.Line),
		Character: int(params.Position.Character),
	})
	if err != nil {
		s.logger.Debug("hover", zap.Error(err))
		return reply(ctx, nil, nil)
	}
	if hover == nil {
		return reply(ctx, nil, nil)
	}

	r := toRange(hover.Range)
	return reply(ctx, protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.Markdown, Value: hover.Contents},
		Range:    &r,
	}, nil)
}

func toDocumentSymbols(symbols []*tooling.Symbol) []protocol.DocumentSymbol {
	out := make([]protocol.DocumentSymbol, 0, len(symbols))
	for _, sym := range symbols {
		ds := protocol.DocumentSymbol{
			Name:           sym.Name,
			Detail:         sym.Detail,
			Kind:           toSymbolKind(sym.Kind),
			Range:          toRange(sym.Range),
			SelectionRange: toRange(sym.Selection),
		}
		if len(sym.Children) > 0 {
			ds.Children = toDocumentSymbols(sym.Children)
		}
		out = append(out, ds)
	}
	return out
}

func toSymbolKind(kind tooling.SymbolKind) protocol.SymbolKind {
	switch kind {
	case tooling.SymbolPackage:
		return protocol.SymbolKindPackage
	case tooling.SymbolEnum:
		return protocol.SymbolKindEnum
	default:
		return protocol.SymbolKindEnumMember
	}
}

func toRange(r tooling.Range) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: uint32(r.Start.Line), Character: uint32(r.Start.Character)},
		End:   protocol.Position{Line: uint32(r.End.Line), Character: uint32(r.End.Character)},
	}
}
