// Package app wires configuration, logging and the graph packages together
// for the graphlib command line tool.
//
// # Responsibilities
//
//   - **Configuration:** Config is validated by NewConfig; environment
//     defaults may come from a dotenv file.
//   - **Logging:** every App owns an isolated slog.Logger that travels through
//     context.Context via ctxlog.
//   - **Loading:** graphs are read from HCL files or directories, or from JSON
//     and YAML documents, picked by file extension.
//   - **Operations:** Inspect, Convert, Filter and Layout each load one graph
//     and write their result to the App's output writer.
package app
