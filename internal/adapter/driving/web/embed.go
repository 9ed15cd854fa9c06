package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet and the live strength meter script).
//
//go:embed static/*
var StaticFS embed.FS
