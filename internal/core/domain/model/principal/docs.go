// Package principal models the actors of the order workflow and their
// roles. A Principal is the explicit representation of "who is calling":
// every lifecycle operation receives one and the authorization table in the
// services package decides what that role may do.
package principal
