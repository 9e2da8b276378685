// See engines.go and bitstream.go for the two concerns this package owns:
// engine construction/splitting and the Bernoulli-word distribution.
package randgen
