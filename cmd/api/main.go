package main

import (
	"log"
	"net"
	"net/http/fcgi"

	"cgi-wizard/internal/shared/config"
	"cgi-wizard/internal/shared/server"
)

func main() {
	cfg := config.Load()
	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	switch cfg.Mode {
	case config.ModeFCGI:
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			log.Fatalf("listen %s: %v", addr, err)
		}
		log.Printf("Starting FastCGI responder on %s", addr)
		if err := fcgi.Serve(ln, r); err != nil {
			log.Fatalf("fastcgi error: %v", err)
		}
	case config.ModeCGI:
		log.Fatalf("SERVE_MODE=cgi is handled by the cgi binary, not the long-running server")
	default:
		log.Printf("Starting wizard server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}
}
