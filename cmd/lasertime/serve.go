package main

import (
	"log"
	"net/http"
	"os"

	"github.com/mastercactapus/lasertime/api"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve program analysis over HTTP",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	cmd.Flags().String("addr", "", "Address to bind the server to (default :9091, env LASERTIME_ADDR).")
	return cmd
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func serve(cmd *cobra.Command, args []string) error {
	addr := envOrDefault("LASERTIME_ADDR", ":9091")
	if v, _ := cmd.Flags().GetString("addr"); v != "" {
		addr = v
	}

	a := api.New(machineOptions(cmd)...)
	defer a.Close()

	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
		a.ServeHTTP(w, req)
	}))
}
