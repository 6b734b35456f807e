package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Library runs the function calls of a model turn. The facilitator's
// library asks the experts, the clerk's library lists the pages.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// Function is a tool offered to a model: an expert to ask, or a
// list_<page> function.
type Function interface {
	Declaration() *genai.FunctionDeclaration
	// Call answers the call id. Failures are reported to the model in the
	// response, never returned.
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// NewLibrary indexes functions by their declared name, the first one wins.
// A call to a name that is not in the index is answered with an error for
// the model to read.
func NewLibrary[T Function](functions []T) Library {
	byName := make(map[string]Function, len(functions))
	for _, f := range functions {
		if name := f.Declaration().Name; byName[name] == nil {
			byName[name] = f
		}
	}
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		f, ok := byName[call.Name]
		if !ok {
			return failure(call.ID, call.Name, fmt.Errorf("unknown function %s", call.Name))
		}
		return f.Call(ctx, call.ID, call.Args)
	}
}

// NewDeclaration lists the declarations of functions, in order, for the
// tools of a GenerateContentConfig.
func NewDeclaration[T Function](functions []T) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, len(functions))
	for i, f := range functions {
		decls[i] = f.Declaration()
	}
	return decls
}
