// Command vaultctl is a small operational helper around the Vault
// client SDK, driven by VAULT_HOST / VAULT_USERNAME / VAULT_PASSWORD
// (or a .env file in the working directory). Set VAULT_DEBUG=1 for
// per-call traces.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"

	veevavault "github.com/veevavault/client-go"
	"github.com/veevavault/client-go/credentials"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: vaultctl <command> [args]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	creds, err := credentials.LoadFile(".env")
	if err != nil {
		// A missing .env is fine as long as the environment is set.
		creds, err = credentials.Load()
		if err != nil {
			fatal("load credentials: %v", err)
		}
	}

	level := hclog.Warn
	if os.Getenv("VAULT_DEBUG") != "" {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "vaultctl",
		Level: level,
	})

	client, err := veevavault.Authenticate(ctx, creds, veevavault.WithLogger(logger))
	if err != nil {
		fatal("authenticate: %v", err)
	}

	switch os.Args[1] {
	case "list":
		list(ctx, client, arg(2, "object type"))
	case "get-document":
		getDocument(ctx, client, intArg(2, "document id"))
	case "get-binder":
		getBinder(ctx, client, intArg(2, "binder id"))
	case "set-binder-docs":
		setBinderDocs(ctx, client, intArg(2, "binder id"), intArgs(3))
	case "remove-binder-docs":
		removeBinderDocs(ctx, client, intArg(2, "binder id"), os.Args[3:])
	case "delete-document":
		if err := client.DeleteDocument(ctx, intArg(2, "document id")); err != nil {
			fatal("delete document: %v", err)
		}
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func list(ctx context.Context, client *veevavault.Client, objectType string) {
	objects, err := client.ListObjects(ctx, objectType)
	if err != nil {
		fatal("list %s: %v", objectType, err)
	}
	for _, obj := range objects {
		fmt.Printf("%d\t%s\n", obj.ID, obj.Name)
	}
}

func getDocument(ctx context.Context, client *veevavault.Client, id int) {
	doc, err := client.GetDocument(ctx, id)
	if err != nil {
		fatal("get document: %v", err)
	}
	if err := json.NewEncoder(os.Stdout).Encode(doc); err != nil {
		fatal("encode document: %v", err)
	}
}

func getBinder(ctx context.Context, client *veevavault.Client, id int) {
	nodes, err := client.GetBinderDocuments(ctx, id)
	if err != nil {
		fatal("get binder: %v", err)
	}
	for _, node := range nodes {
		fmt.Printf("%d\t%s\tdocument %d\t%s\n", node.Order, node.NodeID, node.DocumentID, node.Name)
	}
}

func setBinderDocs(ctx context.Context, client *veevavault.Client, binderID int, docIDs []int) {
	if err := client.SetBinderDocuments(ctx, binderID, docIDs); err != nil {
		fatal("set binder documents: %v", err)
	}
	fmt.Printf("assigned %d documents\n", len(docIDs))
}

func removeBinderDocs(ctx context.Context, client *veevavault.Client, binderID int, nodeIDs []string) {
	if err := client.RemoveBinderDocuments(ctx, binderID, veevavault.NodeIDs(nodeIDs...)); err != nil {
		fatal("remove binder documents: %v", err)
	}
	fmt.Printf("removed %d nodes\n", len(nodeIDs))
}

func arg(i int, name string) string {
	if len(os.Args) <= i {
		fatal("missing %s", name)
	}
	return os.Args[i]
}

func intArg(i int, name string) int {
	v, err := strconv.Atoi(arg(i, name))
	if err != nil {
		fatal("invalid %s: %v", name, err)
	}
	return v
}

func intArgs(from int) []int {
	ids := make([]int, 0, len(os.Args)-from)
	for _, raw := range os.Args[from:] {
		v, err := strconv.Atoi(raw)
		if err != nil {
			fatal("invalid document id %q: %v", raw, err)
		}
		ids = append(ids, v)
	}
	return ids
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
