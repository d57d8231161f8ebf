// Package client holds the in-browser behaviour of the portfolio page: the
// entrance-animation visibility trigger, the active navigation tracker, the
// scroll velocity smoother and the email copy indicator.
//
// Everything here is host-agnostic. The browser bindings live in
// cmd/clientwasm and satisfy the Observer, Scheduler and Clipboard interfaces.
package client
