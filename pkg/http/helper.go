package http

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"slices"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
)

var routableMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// RejectOtherMethods registers handle on path for every routable method not in
// allowed, so each endpoint controls the body of its own 405 response.
func RejectOtherMethods(router *httprouter.Router, path string, handle httprouter.Handle, allowed ...string) {
	for _, method := range routableMethods {
		if slices.Contains(allowed, method) {
			continue
		}
		router.Handle(method, path, handle)
	}
}

// TrustedProxies lists the peers whose forwarding headers are believed.
type TrustedProxies []netip.Prefix

// ParseTrustedProxies reads a comma-separated list of IPs and CIDR ranges.
// An empty list trusts nobody.
func ParseTrustedProxies(raw string) (TrustedProxies, error) {
	var proxies TrustedProxies
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
			}
			proxies = append(proxies, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
		}
		addr = addr.Unmap()
		proxies = append(proxies, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return proxies, nil
}

func (t TrustedProxies) Contains(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, prefix := range t {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientAddress returns the originating address of the request. Forwarding
// headers are only read when the connection peer is a trusted proxy; then the
// right-most X-Forwarded-For hop that is not itself trusted wins, followed by
// X-Real-IP. Otherwise the peer address is the client.
func ClientAddress(r *http.Request, trusted TrustedProxies) string {
	peer := peerAddress(r)
	peerAddr, err := netip.ParseAddr(peer)
	if err != nil || !trusted.Contains(peerAddr) {
		return peer
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		hops := strings.Split(fwd, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
			if err != nil {
				break
			}
			if !trusted.Contains(hop) {
				return hop.Unmap().String()
			}
		}
	}
	if realIP, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return realIP.Unmap().String()
	}
	return peer
}

func peerAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ParseLeadingInt reads an optionally signed run of digits at the start of s,
// after leading whitespace, and ignores whatever follows: "2abc" and "2.7"
// both give 2. It reports false when s has no leading digits or the value
// overflows an int.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
