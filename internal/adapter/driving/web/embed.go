package web

import "embed"

// StaticFS holds the embedded static assets (the stylesheet).
//
//go:embed static/*
var StaticFS embed.FS
