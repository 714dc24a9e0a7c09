package vecgeom_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/vecgeom"
	"github.com/hupe1980/vecgeom/vector"
)

// Example_primitives demonstrates the elementwise vector primitives.
func Example_primitives() {
	tk := vecgeom.New()

	x := vector.MustOf3([3]float64{1, 0, 0}, [3]float64{3, 4, 0})
	y := vector.MustOf3([3]float64{0, 1, 0}, [3]float64{-3, -4, 0})

	dots, err := tk.Dot(x, y)
	if err != nil {
		log.Fatal(err)
	}
	angles, err := tk.AnglesBetween(x, y)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(dots)
	fmt.Println(tk.Norm(x))
	fmt.Printf("%.4f %.4f\n", angles[0], angles[1])
	// Output:
	// [0 -25]
	// [1 5]
	// 1.5708 3.1416
}

// Example_seededRotation demonstrates reproducible random rotations.
func Example_seededRotation() {
	tk := vecgeom.New()
	halos := vector.MustOf3([3]float64{1, 2, 2}, [3]float64{0, 0, 3})

	a, err := tk.RandomRotation3D(halos, vecgeom.Seed(42))
	if err != nil {
		log.Fatal(err)
	}
	b, err := tk.RandomRotation3D(halos, vecgeom.Seed(42))
	if err != nil {
		log.Fatal(err)
	}

	norms := tk.Norm(a)
	fmt.Println(a.Equal(b))
	fmt.Printf("%.6f %.6f\n", norms[0], norms[1])
	// Output:
	// true
	// 3.000000 3.000000
}

// Example_perpendicular demonstrates drawing random orthogonal directions.
func Example_perpendicular() {
	tk := vecgeom.New()
	v := vector.MustOf3([3]float64{0, 0, 5})

	perp, err := tk.RandomPerpendicularDirections(v, vecgeom.Seed(1))
	if err != nil {
		log.Fatal(err)
	}
	dots, err := tk.Dot(v, perp)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%.6f %.6f\n", tk.Norm(perp)[0], dots[0])
	// Output: 1.000000 0.000000
}
