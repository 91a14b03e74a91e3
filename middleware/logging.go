package middleware

import (
	"fmt"

	"github.com/weftlabs/weft"
)

// Logging logs each Run of the decorated node. The name identifies the node
// in log output since nodes themselves are anonymous values.
func Logging[In, Out any](name string, logger weft.Logger) Middleware[In, Out] {
	return func(node weft.Node[In, Out]) weft.Node[In, Out] {
		return &wrapped[In, Out]{
			run: func(input In) Out {
				logger.Debug("node run starting",
					"node", name,
					"input_type", fmt.Sprintf("%T", input))

				output := node.Run(input)

				logger.Debug("node run completed",
					"node", name,
					"output_type", fmt.Sprintf("%T", output))

				return output
			},
		}
	}
}
