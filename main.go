package main

import (
	"fmt"
	"os"
	"sort"

	"uploadnodes/logger"
	"uploadnodes/nodes"
	"uploadnodes/settings"
)

const defaultConfigPath = "config.toml"

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}

	config, err := settings.LoadConfig(defaultConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Init(config.Logging)

	nodeId := os.Args[1]
	node, err := nodes.Lookup(nodeId)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(2)
	}

	logger.Info("Running node", "node", nodeId, "files", len(os.Args[2:]))

	report, err := node.Run(config, os.Args[2:])
	if err != nil {
		logger.Fatal("Node run failed", "node", nodeId, "error", err)
	}

	fmt.Println(report)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: uploadnodes <node> <file> [file...]")
	fmt.Fprintln(os.Stderr, "nodes:")

	ids := make([]string, 0, len(nodes.Registry))
	for id := range nodes.Registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		fmt.Fprintf(os.Stderr, "  %-28s %s\n", id, nodes.Registry[id].DisplayName)
	}
}
