/*
Package factory implements the recursive tree walk that promotes raw PIX
response data into objects.

A Factory is responsible for dynamically building dict-like objects from
the nested data returned by the PIX endpoints. Any mapping in a response
that carries a "class" key naming a registered class is promoted to a
pix.Object with that class's behaviors bound (or with no behaviors when
the name is unregistered).

Three walks are provided:
  - Objectify: full deep transform of a response payload, preserving
    container shape
  - Contents: one-level iteration over a mapping's immediate
    mapping-valued children
  - Children: depth-first pre-order iteration over the promoted objects
    within a tree

Contents and Children return range-over-func sequences; they are lazy and
restartable, and promote nothing until consumed.
*/
package factory
