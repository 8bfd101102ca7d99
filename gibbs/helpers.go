package gibbs

import "math"

// EntropyPart computes entropy excluding the terms that depend on
// Absolute Salinity alone. Those terms cancel in entropy differences
// at fixed SA, which is all the potential-temperature solvers need,
// and skipping them avoids a logarithm.
func EntropyPart(sa, t, p float64) float64 {
	if sa < 0 {
		sa = 0
	}
	x2 := Sfac * sa
	x := math.Sqrt(x2)
	y := t * 0.025
	z := p * 1e-4

	g03 := z*(-270.983805184062+
		z*(776.153611613101+z*(-196.51255088122+(28.9796526294175-
			2.13290083518327*z)*z))) +
		y*(-24715.571866078+z*(2910.0729080936+
			z*(-1513.116771538718+z*(546.959324647056+z*
				(-111.1208127634436+8.68841343834394*z))))+
			y*(2210.2236124548363+z*(-2017.52334943521+
				z*(1498.081172457456+z*(-718.6359919632359+
					(146.4037555781616-4.9892131862671505*z)*z)))+
				y*(-592.743745734632+z*(1591.873781627888+
					z*(-1207.261522487504+(608.785486935364-
						105.4993508931208*z)*z))+
					y*(290.12956292128547+z*(-973.091553087975+
						z*(602.603274510125+z*(-276.361526170076+
							32.40953340386105*z)))+
						y*(-113.90630790850321+y*
							(21.35571525415769-67.41756835751434*z)+
							z*(381.06836198507096+z*(-133.7383902842754+
								49.023632509086724*z)))))))

	g08 := x2 * (z*(729.116529735046+
		z*(-343.956902961561+z*(124.687671116248+z*(-31.656964386073+
			7.04658803315449*z)))) +
		x*(x*(y*(-137.1145018408982+y*(148.10030845687618+
			y*(-68.5590309679152+12.4848504784754*y)))-
			22.6683558512829*z)+z*(-175.292041186547+
			(83.1923927801819-29.483064349429*z)*z)+
			y*(-86.1329351956084+z*(766.116132004952+
				z*(-108.3834525034224+51.2796974779828*z))+
				y*(-30.0682112585625-1380.9597954037708*z+
					y*(3.50240264723578+938.26075044542*z)))) +
		y*(1760.062705994408+y*(-675.802947790203+
			y*(365.7041791005036+y*(-108.30162043765552+
				12.78101825083098*y)+
				z*(-1190.914967948748+(298.904564555024-
					145.9491676006352*z)*z))+
			z*(2082.7344423998043+z*(-614.668925894709+
				(340.685093521782-33.3848202979239*z)*z)))+
			z*(-1721.528607567954+z*(674.819060538734+
				z*(-356.629112415276+(88.4080716616-
					15.84003094423364*z)*z)))))

	return -(g03 + g08) * 0.025
}

// EntropyPartZeroP is EntropyPart at p = 0, with pt0 the potential
// temperature referenced to 0 dbar.
func EntropyPartZeroP(sa, pt0 float64) float64 {
	if sa < 0 {
		sa = 0
	}
	x2 := Sfac * sa
	x := math.Sqrt(x2)
	y := pt0 * 0.025

	g03 := y * (-24715.571866078 + y*(2210.2236124548363+
		y*(-592.743745734632+y*(290.12956292128547+
			y*(-113.90630790850321+y*21.35571525415769)))))

	g08 := x2 * (x*(x*(y*(-137.1145018408982+y*
		(148.10030845687618+
			y*(-68.5590309679152+12.4848504784754*y))))+
		y*(-86.1329351956084+y*(-30.0682112585625+y*
			3.50240264723578))) +
		y*(1760.062705994408+y*(-675.802947790203+
			y*(365.7041791005036+y*(-108.30162043765552+
				12.78101825083098*y)))))

	return -(g03 + g08) * 0.025
}

// GibbsPT0PT0 is the second temperature derivative of the Gibbs
// function at p = 0, i.e. Eval(GTT, sa, pt0, 0) without the pressure
// terms.
func GibbsPT0PT0(sa, pt0 float64) float64 {
	if sa < 0 {
		sa = 0
	}
	x2 := Sfac * sa
	x := math.Sqrt(x2)
	y := pt0 * 0.025

	g03 := -24715.571866078 +
		y*(4420.4472249096725+
			y*(-1778.231237203896+
				y*(1160.5182516851419+
					y*(-569.531539542516+y*128.13429152494615))))

	g08 := x2 * (1760.062705994408 + x*(-86.1329351956084+
		x*(-137.1145018408982+y*(296.20061691375236+
			y*(-205.67709290374563+49.9394019139016*y)))+
		y*(-60.136422517125+y*10.50720794170734)) +
		y*(-1351.605895580406+y*(1097.1125373015109+
			y*(-433.20648175062206+63.905091254154904*y))))

	return (g03 + g08) * 0.000625
}

// EnthalpySSO0CT25 computes the enthalpy of a parcel at Standard Ocean
// Salinity and zero Conservative Temperature as a function of pressure,
// from the 25-term CT expression. It supplies the pressure integral of
// the reference specific-volume profile used by the height converters.
func EnthalpySSO0CT25(p float64) float64 {
	a0 := 1 + SSO*(2.0777716085618458e-3+math.Sqrt(SSO)*
		3.4688210757917340e-6)
	a1 := 6.8314629554123324e-6
	b0 := 9.9984380290708214e2 + SSO*(2.8925731541277653e0+SSO*
		1.9457531751183059e-3)
	b1 := 0.5 * (1.1930681818531748e-2 + SSO*5.9355685925035653e-6)
	b2 := -2.5943389807429039e-8
	sq := math.Sqrt(b1*b1 - b0*b2)
	A := b1 - sq
	B := b1 + sq

	part := (a0*b2 - a1*b1) / (b2 * (B - A))

	return DB2Pascal * ((a1/(2*b2))*
		math.Log(1+p*(2*b1+b2*p)/b0) + part*
		math.Log(1+(b2*p*(B-A))/(A*(B+b2*p))))
}

// SpecVolSSO0CT25 computes the specific volume of a parcel at Standard
// Ocean Salinity and zero Conservative Temperature, from the 25-term CT
// expression.
func SpecVolSSO0CT25(p float64) float64 {
	return (1.00000000e+00 + SSO*(2.0777716085618458e-003+
		math.Sqrt(SSO)*3.4688210757917340e-006) + p*6.8314629554123324e-006) /
		(9.9984380290708214e+002 + SSO*(2.8925731541277653e+000+SSO*
			1.9457531751183059e-003) + p*(1.1930681818531748e-002+SSO*
			5.9355685925035653e-006+p*-2.5943389807429039e-008))
}

// PotEnthalpyFromPT computes potential enthalpy from Absolute Salinity
// and potential temperature referenced to 0 dbar. The polynomial is the
// closed form of g(SA,pt,0) - (Kelvin+pt)*g_T(SA,pt,0) with like powers
// collected; Conservative Temperature is this divided by CP0.
func PotEnthalpyFromPT(sa, pt float64) float64 {
	if sa < 0 {
		sa = 0
	}
	x2 := Sfac * sa
	x := math.Sqrt(x2)
	y := pt * 0.025

	return 61.01362420681071 + y*(168776.46138048015+
		y*(-2735.2785605119625+y*(2574.2164453821433+
			y*(-1536.6644434977543+y*(545.7340497931629+
				(-50.91091728474331-18.30489878927802*y)*y))))) +
		x2*(268.5520265845071+y*(-12019.028203559312+
			y*(3734.858026725145+y*(-2046.7671145057618+
				y*(465.28655623826234+(-0.6370820302376359-
					10.650848542359153*y)*y))))+
			x*(937.2099110620707+y*(588.1802812170108+
				y*(248.39476522971285+(-3.871557904936333-
					2.6268019854268356*y)*y))+
				x*(-1687.914374187449+x*(246.9598888781377+
					x*(123.59576582457964-48.5891069025409*x))+
					y*(936.3206544460336+
						y*(-942.7827304544439+y*(369.4389437509002+
							(-33.83664947895248-9.987880382780322*y)*y))))))
}
