package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"fuzzydb/internal/cliparse"
	"fuzzydb/internal/csvload"
	"fuzzydb/internal/format"
	"fuzzydb/internal/protocol"
	"fuzzydb/pkg/fuzzydb"
)

func main() {
	var (
		hostIP    string
		hostPort  int
		batchSize int
		debug     bool
	)

	flag.StringVar(&hostIP, "host-ip", "127.0.0.1", "ip address of the host to connect to")
	flag.IntVar(&hostPort, "host-port", 7890, "port of the host to connect to")
	flag.IntVar(&batchSize, "batch-size", csvload.DefaultBatchSize, "number of records in each LOAD batch")
	flag.BoolVar(&debug, "debug", false, "turn debug output on")
	flag.Parse()

	addr := fmt.Sprintf("%s:%d", hostIP, hostPort)

	repl := &repl{
		addr:      addr,
		batchSize: batchSize,
		debug:     debug,
		out:       os.Stdout,
	}
	os.Exit(repl.run())
}

type repl struct {
	addr      string
	batchSize int
	debug     bool
	out       *os.File
}

// run drives the REPL loop until EXIT or end of input, returning the
// process exit code: 0 on normal EXIT or a clean end of input, non-zero on
// a fatal I/O error reading the input stream.
func (r *repl) run() int {
	interactive := isatty.IsTerminal(os.Stdin.Fd())
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if interactive {
			fmt.Print("Enter input: ")
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				fmt.Fprintf(os.Stderr, "fatal: reading input: %v\n", err)
				return 1
			}
			return 0
		}

		cmd, err := cliparse.Parse(scanner.Text())
		if err != nil {
			fmt.Println("Invalid input command")
			printHelp()
			continue
		}

		switch cmd.Kind {
		case cliparse.Exit:
			return 0
		case cliparse.Help:
			printHelp()
		case cliparse.Load:
			r.load(cmd.Filename)
		case cliparse.Query:
			r.query(cmd.Query)
		}
	}
}

func printHelp() {
	fmt.Println("\tEXIT => exit the session")
	fmt.Println("\tHELP => print this menu")
	fmt.Println("\tLOAD <filename> => load csv file into cluster")
	fmt.Println("\tSELECT [ * | <field> ( , <field> )* ] WHERE <field> ~<type> <value> (AND <field> ~<type> <value>)* => perform query on cluster")
}

// load implements the LOAD command: stream the file in batches, sending one
// InsertEntitiesRequest per batch over its own connection and waiting for
// the response before sending the next.
func (r *repl) load(filename string) {
	start := time.Now()

	f, err := os.Open(filename)
	if err != nil {
		fmt.Printf("file '%s' does not exist or cannot be opened\n", filename)
		return
	}
	defer f.Close()

	loader, err := csvload.New(f, r.batchSize)
	if err != nil {
		fmt.Printf("file '%s' does not exist or cannot be opened\n", filename)
		return
	}

	recordCount, err := loader.Batches(func(batch csvload.Batch) error {
		entities := make([]protocol.EntityFields, len(batch))
		for i, fields := range batch {
			entities[i] = protocol.EntityFields{Fields: fields}
		}

		resp, err := r.send(protocol.Message{
			InsertEntities: &protocol.InsertEntitiesRequest{Entities: entities},
		})
		if err != nil {
			return err
		}
		if resp.Result == nil || !resp.Result.Success {
			return fmt.Errorf("error writing entity buffer")
		}
		if r.debug {
			fmt.Printf("inserted %d records\n", len(batch))
		}
		return nil
	})
	if err != nil {
		fmt.Printf("load failed: %v\n", err)
		return
	}

	fmt.Printf("\tloaded %d records in %dms\n", recordCount, time.Since(start).Milliseconds())
}

// query implements the SELECT command.
func (r *repl) query(q fuzzydb.Query) {
	start := time.Now()

	resp, err := r.send(protocol.Message{
		Query: &protocol.QueryRequest{Filters: q.Filters, Projection: q.Projection},
	})
	duration := time.Since(start)
	if err != nil {
		fmt.Printf("query failed: %v\n", err)
		return
	}

	if resp.Error != nil {
		fmt.Printf("query error: %s\n", resp.Error.Message)
		return
	}
	if resp.Entities == nil {
		fmt.Println("unexpected response from server")
		return
	}

	entities := make([]fuzzydb.Entity, len(resp.Entities.Entities))
	for i, e := range resp.Entities.Entities {
		entities[i] = fuzzydb.Entity{Fields: e.Fields}
	}

	if err := format.Render(r.out, entities, q.Projection, duration); err != nil {
		fmt.Printf("render failed: %v\n", err)
	}
}

// send opens a fresh connection for one request/response round trip — the
// server treats every connection as exactly one request.
func (r *repl) send(req protocol.Message) (protocol.Message, error) {
	conn, err := net.Dial("tcp", r.addr)
	if err != nil {
		return protocol.Message{}, fmt.Errorf("connect to %s: %w", r.addr, err)
	}
	defer conn.Close()

	if err := protocol.WriteMessage(conn, req); err != nil {
		return protocol.Message{}, fmt.Errorf("send request: %w", err)
	}

	resp, err := protocol.ReadMessage(conn)
	if err != nil {
		return protocol.Message{}, fmt.Errorf("read response: %w", err)
	}
	return resp, nil
}
