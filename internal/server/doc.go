// Package server runs the site's HTTP listener.
//
// Binding the socket ([Server.Listen]) is separate from serving
// ([Server.Run]) so the caller learns about an unusable port before it
// reports the server as listening.
package server
