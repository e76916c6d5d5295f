package netfile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arrakis-eda/gridrouter/netlist"
)

// WriteRoutes writes one line per routed net in nets, in order:
//
//	<net_name> (L0,x0,y0) (L1,x1,y1) ... (Lk,xk,yk)
//
// Nets that are not Routed() are omitted entirely; no trailing metadata
// is written for any net.
func WriteRoutes(w io.Writer, nets netlist.List) error {
	bw := bufio.NewWriter(w)

	for _, n := range nets {
		if !n.Routed() {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s %s\n", n.Name, n.RouteString()); err != nil {
			return err
		}
	}

	return bw.Flush()
}
