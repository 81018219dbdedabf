package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Regenerates scan/known.go from the IANA service name registry. Only
// well-known ports (<=1024) and a fixed set of widely deployed registered
// ports are kept, so the lookup table stays small.
var registeredExtras = map[int]bool{
	1080: true, 1194: true, 1433: true, 1521: true, 1723: true,
	1883: true, 2049: true, 2181: true, 2375: true, 2379: true,
	3128: true, 3306: true, 3389: true, 4369: true, 5060: true,
	5222: true, 5432: true, 5672: true, 5900: true, 5984: true,
	6379: true, 6443: true, 6667: true, 7001: true, 8080: true,
	8443: true, 8888: true, 9000: true, 9090: true, 9092: true,
	9200: true, 11211: true, 27017: true,
}

func main() {

	resp, err := http.Get("https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv")
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	services := map[int]string{}

	reader := csv.NewReader(resp.Body)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}

		if len(record) < 3 || record[2] != "tcp" || record[0] == "" || record[1] == "" {
			continue
		}

		port, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}
		if port > 1024 && !registeredExtras[port] {
			continue
		}
		if _, ok := services[port]; ok {
			continue
		}
		services[port] = strings.ToLower(record[0])
	}

	ports := make([]int, 0, len(services))
	for port := range services {
		ports = append(ports, port)
	}
	sort.Ints(ports)

	out, err := os.Create("./scan/known.go")
	if err != nil {
		panic(err)
	}
	defer out.Close()

	out.WriteString(`package scan

// data from https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv
var knownPorts = map[int]string{`)

	for _, port := range ports {
		fmt.Fprintf(out, "\n\t%d: %q,", port, services[port])
	}

	out.WriteString(`
}
`)
}
